package repository

import (
	"context"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type IntakeRepository interface {
	Create(ctx context.Context, intake *models.ProjectIntake) (int64, error)
	ListAll(ctx context.Context) ([]*models.ProjectIntake, error)
}

type intakeRepository struct {
	db *gorm.DB
}

func NewIntakeRepository(db *gorm.DB) IntakeRepository {
	return &intakeRepository{db: db}
}

func (r *intakeRepository) Create(ctx context.Context, intake *models.ProjectIntake) (int64, error) {
	if err := r.db.WithContext(ctx).Create(intake).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return intake.ID, nil
}

func (r *intakeRepository) ListAll(ctx context.Context) ([]*models.ProjectIntake, error) {
	var intakes []*models.ProjectIntake
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&intakes).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return intakes, nil
}
