package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "test-signing-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(jwtSecret, "42", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(jwtSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "nextnoetics", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	token, err := GenerateToken(jwtSecret, "42", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(jwtSecret, token)
	assert.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := GenerateToken(jwtSecret, "42", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken("different-secret", token)
	assert.Error(t, err)
}

func TestValidateMalformedToken(t *testing.T) {
	_, err := ValidateToken(jwtSecret, "not.a.jwt")
	assert.Error(t, err)
}
