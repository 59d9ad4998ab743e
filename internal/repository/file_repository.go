package repository

import (
	"context"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type FileRepository interface {
	Create(ctx context.Context, file *models.FileAsset) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.FileAsset, bool, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.FileAsset, error)
	ListByOrgID(ctx context.Context, orgID int64) ([]*models.FileAsset, error)
	CheckByUserID(ctx context.Context, fileID, userID int64) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(ctx context.Context, file *models.FileAsset) (int64, error) {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return file.ID, nil
}

func (r *fileRepository) GetByID(ctx context.Context, id int64) (*models.FileAsset, bool, error) {
	var file models.FileAsset
	err := r.db.WithContext(ctx).First(&file, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &file, true, nil
}

func (r *fileRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.FileAsset, error) {
	var files []*models.FileAsset
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) ListByOrgID(ctx context.Context, orgID int64) ([]*models.FileAsset, error) {
	var files []*models.FileAsset
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) CheckByUserID(ctx context.Context, fileID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.FileAsset{}).
		Where("id = ? AND user_id = ?", fileID, userID).
		Count(&count).Error
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return count == 1, nil
}

func (r *fileRepository) Remove(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.FileAsset{}, id).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
