package repository

import (
	"context"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type UserTokenRepository interface {
	GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.UserToken, bool, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.UserToken, error)
	Upsert(ctx context.Context, token *models.UserToken) (int64, error)
	CheckByUserID(ctx context.Context, tokenID, userID int64) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type userTokenRepository struct {
	db *gorm.DB
}

func NewUserTokenRepository(db *gorm.DB) UserTokenRepository {
	return &userTokenRepository{db: db}
}

// GetByUserAndPlatform expects zero-or-one row per (user, platform) pair.
func (r *userTokenRepository) GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.UserToken, bool, error) {
	var token models.UserToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, platform).
		First(&token).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &token, true, nil
}

func (r *userTokenRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.UserToken, error) {
	var tokens []*models.UserToken
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tokens).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return tokens, nil
}

func (r *userTokenRepository) Upsert(ctx context.Context, token *models.UserToken) (int64, error) {
	var existing models.UserToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", token.UserID, token.Platform).
		First(&existing).Error
	if err == nil {
		existing.AccessToken = token.AccessToken
		existing.ExpiresAt = token.ExpiresAt
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			slog.Info(err.Error())
			return 0, err
		}
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		slog.Info(err.Error())
		return 0, err
	}

	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return token.ID, nil
}

func (r *userTokenRepository) CheckByUserID(ctx context.Context, tokenID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserToken{}).
		Where("id = ? AND user_id = ?", tokenID, userID).
		Count(&count).Error
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return count == 1, nil
}

func (r *userTokenRepository) Remove(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.UserToken{}, id).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
