package service

import (
	"context"
	"testing"
	"time"

	config "github.com/adamn1225/nextnoetics-gorm-sub000/configs"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/adamn1225/nextnoetics-gorm-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubTokenRepo struct {
	saved *models.UserToken
}

func (r *stubTokenRepo) GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.UserToken, bool, error) {
	return nil, false, nil
}

func (r *stubTokenRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.UserToken, error) {
	return nil, nil
}

func (r *stubTokenRepo) Upsert(ctx context.Context, token *models.UserToken) (int64, error) {
	r.saved = token
	return 1, nil
}

func (r *stubTokenRepo) CheckByUserID(ctx context.Context, tokenID, userID int64) (bool, error) {
	return r.saved != nil, nil
}

func (r *stubTokenRepo) Remove(ctx context.Context, id int64) error {
	r.saved = nil
	return nil
}

func TestTokenSaveSealsValue(t *testing.T) {
	repo := &stubTokenRepo{}
	s := NewTokenService(config.Config{SecretKey: testSecret}, repo)

	err := s.Save(context.Background(), 7, &transfer.TokenUpsert{
		Platform:    "Twitter",
		AccessToken: "abc123",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.saved)
	assert.Equal(t, "twitter", repo.saved.Platform)
	assert.NotEqual(t, "abc123", repo.saved.AccessToken, "plaintext never reaches storage")

	plain, err := utils.Decrypt(repo.saved.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "abc123", plain)
}

func TestTokenSaveParsesExpiry(t *testing.T) {
	repo := &stubTokenRepo{}
	s := NewTokenService(config.Config{SecretKey: testSecret}, repo)

	expiry := time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second)
	err := s.Save(context.Background(), 7, &transfer.TokenUpsert{
		Platform:    "facebook",
		AccessToken: "abc123",
		ExpiresAt:   expiry.Format(time.RFC3339),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.saved.ExpiresAt)
	assert.True(t, repo.saved.ExpiresAt.Equal(expiry))
}

func TestTokenSaveValidation(t *testing.T) {
	s := NewTokenService(config.Config{SecretKey: testSecret}, &stubTokenRepo{})

	err := s.Save(context.Background(), 7, &transfer.TokenUpsert{Platform: "twitter"})
	assert.Error(t, err, "empty token rejected")

	err = s.Save(context.Background(), 7, &transfer.TokenUpsert{Platform: "myspace", AccessToken: "x"})
	assert.Error(t, err, "unknown platform rejected")

	err = s.Save(context.Background(), 7, &transfer.TokenUpsert{
		Platform:    "twitter",
		AccessToken: "x",
		ExpiresAt:   "next week",
	})
	assert.Error(t, err, "bad expiry rejected")
}
