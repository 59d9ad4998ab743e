package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	config "github.com/adamn1225/nextnoetics-gorm-sub000/configs"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/cache"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/adamn1225/nextnoetics-gorm-sub000/pkg/utils"
)

const analyticsCacheTTL = 10 * time.Minute

// AnalyticsService manages per-organization analytics provider settings.
// Reads go through the cache; the API key itself is sealed and never leaves
// the service.
type AnalyticsService interface {
	GetInfo(ctx context.Context, actorID, orgID int64) (*transfer.AnalyticsInfo, error)
	Update(ctx context.Context, actorID int64, au *transfer.AnalyticsUpdate) error
}

type analyticsService struct {
	cfg config.Config
	ar  repository.AnalyticsRepository
	or  repository.OrganizationRepository
	c   *cache.Cache
}

func NewAnalyticsService(
	cfg config.Config,
	ar repository.AnalyticsRepository,
	or repository.OrganizationRepository,
	c *cache.Cache) AnalyticsService {
	return &analyticsService{cfg: cfg, ar: ar, or: or, c: c}
}

func (s *analyticsService) GetInfo(ctx context.Context, actorID, orgID int64) (*transfer.AnalyticsInfo, error) {
	member, err := s.or.IsMember(ctx, orgID, actorID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, errors.New("user is not a member of this organization")
	}

	key := analyticsCacheKey(orgID)
	var info transfer.AnalyticsInfo
	if found, err := s.c.GetJSON(ctx, key, &info); err == nil && found {
		return &info, nil
	}

	setting, exists, err := s.ar.GetByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !exists {
		err = errors.New("no analytics settings for this organization")
		slog.Info(err.Error())
		return nil, err
	}

	info = transfer.AnalyticsInfo{
		OrganizationID: setting.OrganizationID,
		Provider:       setting.Provider,
		PropertyID:     setting.PropertyID,
	}

	if err := s.c.SetJSON(ctx, key, &info, analyticsCacheTTL); err != nil {
		slog.Info(err.Error())
	}
	return &info, nil
}

func (s *analyticsService) Update(ctx context.Context, actorID int64, au *transfer.AnalyticsUpdate) error {
	if au == nil || au.Provider == "" {
		err := errors.New("analytics provider cannot be empty")
		slog.Info(err.Error())
		return err
	}

	member, err := s.or.IsMember(ctx, au.OrganizationID, actorID)
	if err != nil {
		return err
	}
	if !member {
		return errors.New("user is not a member of this organization")
	}

	setting := &models.AnalyticsSetting{
		OrganizationID: au.OrganizationID,
		Provider:       au.Provider,
		PropertyID:     au.PropertyID,
	}

	if au.APIKey != "" {
		sealed, err := utils.Encrypt([]byte(au.APIKey), []byte(s.cfg.SecretKey))
		if err != nil {
			return err
		}
		setting.APIKey = sealed
	}

	if err := s.ar.Upsert(ctx, setting); err != nil {
		return err
	}

	if err := s.c.Delete(ctx, analyticsCacheKey(au.OrganizationID)); err != nil {
		slog.Info(err.Error())
	}
	return nil
}

func analyticsCacheKey(orgID int64) string {
	return fmt.Sprintf("analytics:org:%d", orgID)
}
