package repository

import (
	"context"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type DispatchAttemptRepository interface {
	Create(ctx context.Context, attempt *models.DispatchAttempt) (int64, error)
	Finalize(ctx context.Context, id int64, errorMessage string) error
	ListByEventID(ctx context.Context, eventID int64) ([]*models.DispatchAttempt, error)
}

type dispatchAttemptRepository struct {
	db *gorm.DB
}

func NewDispatchAttemptRepository(db *gorm.DB) DispatchAttemptRepository {
	return &dispatchAttemptRepository{db: db}
}

func (r *dispatchAttemptRepository) Create(ctx context.Context, attempt *models.DispatchAttempt) (int64, error) {
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return attempt.ID, nil
}

// Finalize closes out an attempt; an empty errorMessage marks success.
func (r *dispatchAttemptRepository) Finalize(ctx context.Context, id int64, errorMessage string) error {
	err := r.db.WithContext(ctx).
		Model(&models.DispatchAttempt{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"completed": true, "error_message": errorMessage}).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *dispatchAttemptRepository) ListByEventID(ctx context.Context, eventID int64) ([]*models.DispatchAttempt, error) {
	var attempts []*models.DispatchAttempt
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&attempts).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return attempts, nil
}
