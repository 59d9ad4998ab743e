package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type CalendarRepository interface {
	Create(ctx context.Context, ev *models.SMMCalendarEvent) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SMMCalendarEvent, bool, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.SMMCalendarEvent, error)
	ListByOrgID(ctx context.Context, orgID int64) ([]*models.SMMCalendarEvent, error)
	ListDue(ctx context.Context, now time.Time) ([]*models.SMMCalendarEvent, error)
	ClaimForDispatch(ctx context.Context, id int64) (bool, error)
	UpdateStatus(ctx context.Context, status string, id int64) error
	Update(ctx context.Context, ev *models.SMMCalendarEvent) error
	CheckByUserID(ctx context.Context, eventID, userID int64) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type calendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) Create(ctx context.Context, ev *models.SMMCalendarEvent) (int64, error) {
	if err := r.db.WithContext(ctx).Create(ev).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return ev.ID, nil
}

func (r *calendarRepository) GetByID(ctx context.Context, id int64) (*models.SMMCalendarEvent, bool, error) {
	var ev models.SMMCalendarEvent
	err := r.db.WithContext(ctx).First(&ev, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &ev, true, nil
}

func (r *calendarRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.SMMCalendarEvent, error) {
	var events []*models.SMMCalendarEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_at").
		Find(&events).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return events, nil
}

func (r *calendarRepository) ListByOrgID(ctx context.Context, orgID int64) ([]*models.SMMCalendarEvent, error) {
	var events []*models.SMMCalendarEvent
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("scheduled_at").
		Find(&events).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return events, nil
}

// ListDue returns events eligible for automatic dispatch: due, still
// scheduled and flagged for auto-posting.
func (r *calendarRepository) ListDue(ctx context.Context, now time.Time) ([]*models.SMMCalendarEvent, error) {
	var events []*models.SMMCalendarEvent
	err := r.db.WithContext(ctx).
		Where("scheduled_at <= ? AND status = ? AND auto_post = ?", now, models.EventStatusScheduled, true).
		Find(&events).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return events, nil
}

// ClaimForDispatch flips scheduled -> publishing keyed by id and current
// status. Zero rows affected means another invocation already owns the event.
func (r *calendarRepository) ClaimForDispatch(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&models.SMMCalendarEvent{}).
		Where("id = ? AND status = ?", id, models.EventStatusScheduled).
		Update("status", models.EventStatusPublishing)
	if tx.Error != nil {
		slog.Info(tx.Error.Error())
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *calendarRepository) UpdateStatus(ctx context.Context, status string, id int64) error {
	err := r.db.WithContext(ctx).
		Model(&models.SMMCalendarEvent{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *calendarRepository) Update(ctx context.Context, ev *models.SMMCalendarEvent) error {
	if err := r.db.WithContext(ctx).Save(ev).Error; err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *calendarRepository) CheckByUserID(ctx context.Context, eventID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SMMCalendarEvent{}).
		Where("id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return count == 1, nil
}

func (r *calendarRepository) Remove(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.SMMCalendarEvent{}, id).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
