package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	config "github.com/adamn1225/nextnoetics-gorm-sub000/configs"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/adamn1225/nextnoetics-gorm-sub000/pkg/utils"
)

// TokenService manages stored platform credentials. Token values are sealed
// with the app secret before they reach the repository and never returned to
// the dashboard in plaintext.
type TokenService interface {
	Save(ctx context.Context, userID int64, tu *transfer.TokenUpsert) error
	List(ctx context.Context, userID int64) ([]*models.UserToken, error)
	Remove(ctx context.Context, userID, tokenID int64) error
}

type tokenService struct {
	cfg config.Config
	tr  repository.UserTokenRepository
}

func NewTokenService(cfg config.Config, tr repository.UserTokenRepository) TokenService {
	return &tokenService{cfg: cfg, tr: tr}
}

func (s *tokenService) Save(ctx context.Context, userID int64, tu *transfer.TokenUpsert) error {
	if tu == nil || tu.AccessToken == "" {
		err := errors.New("access token cannot be empty")
		slog.Info(err.Error())
		return err
	}

	platform := strings.ToLower(tu.Platform)
	if !validPlatforms[platform] {
		err := fmt.Errorf("unknown platform: %s", tu.Platform)
		slog.Info(err.Error())
		return err
	}

	sealed, err := utils.Encrypt([]byte(tu.AccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	token := &models.UserToken{
		UserID:      userID,
		Platform:    platform,
		AccessToken: sealed,
	}

	if tu.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, tu.ExpiresAt)
		if err != nil {
			err = fmt.Errorf("invalid expiry format: %w", err)
			slog.Info(err.Error())
			return err
		}
		token.ExpiresAt = &expiresAt
	}

	if _, err := s.tr.Upsert(ctx, token); err != nil {
		return fmt.Errorf("Error saving token")
	}
	return nil
}

func (s *tokenService) List(ctx context.Context, userID int64) ([]*models.UserToken, error) {
	return s.tr.ListByUserID(ctx, userID)
}

func (s *tokenService) Remove(ctx context.Context, userID, tokenID int64) error {
	owned, err := s.tr.CheckByUserID(ctx, tokenID, userID)
	if err != nil {
		return err
	}
	if !owned {
		err = errors.New("token not found for user")
		slog.Info(err.Error())
		return err
	}
	return s.tr.Remove(ctx, tokenID)
}
