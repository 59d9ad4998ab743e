package repository

import (
	"context"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Task, bool, error)
	ListByOrgID(ctx context.Context, orgID int64) ([]*models.Task, error)
	ListByAssignee(ctx context.Context, userID int64) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	UpdateStatus(ctx context.Context, status string, id int64) error
	Remove(ctx context.Context, id int64) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) (int64, error) {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return task.ID, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*models.Task, bool, error) {
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &task, true, nil
}

func (r *taskRepository) ListByOrgID(ctx context.Context, orgID int64) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) ListByAssignee(ctx context.Context, userID int64) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("assignee_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, status string, id int64) error {
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *taskRepository) Remove(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.Task{}, id).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
