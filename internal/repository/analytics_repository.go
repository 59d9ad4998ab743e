package repository

import (
	"context"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	GetByOrgID(ctx context.Context, orgID int64) (*models.AnalyticsSetting, bool, error)
	Upsert(ctx context.Context, setting *models.AnalyticsSetting) error
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetByOrgID(ctx context.Context, orgID int64) (*models.AnalyticsSetting, bool, error) {
	var setting models.AnalyticsSetting
	err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).First(&setting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &setting, true, nil
}

func (r *analyticsRepository) Upsert(ctx context.Context, setting *models.AnalyticsSetting) error {
	var existing models.AnalyticsSetting
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", setting.OrganizationID).
		First(&existing).Error
	if err == nil {
		existing.Provider = setting.Provider
		existing.PropertyID = setting.PropertyID
		existing.APIKey = setting.APIKey
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			slog.Info(err.Error())
			return err
		}
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		slog.Info(err.Error())
		return err
	}

	if err := r.db.WithContext(ctx).Create(setting).Error; err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
