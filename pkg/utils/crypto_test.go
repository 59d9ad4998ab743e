package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte("0123456789abcdef0123456789abcdef")

func TestEncryptDecrypt(t *testing.T) {
	sealed, err := Encrypt([]byte("platform-access-token"), key)
	require.NoError(t, err)
	assert.NotEqual(t, "platform-access-token", sealed)

	plain, err := Decrypt(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, "platform-access-token", plain)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	first, err := Encrypt([]byte("same input"), key)
	require.NoError(t, err)
	second, err := Encrypt([]byte("same input"), key)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "fresh nonce per call")
}

func TestDecryptWrongKey(t *testing.T) {
	sealed, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	otherKey := []byte("fedcba9876543210fedcba9876543210")
	_, err = Decrypt(sealed, otherKey)
	assert.Error(t, err)
}

func TestDecryptGarbage(t *testing.T) {
	_, err := Decrypt("not base64!!!", key)
	assert.Error(t, err)

	_, err = Decrypt("c2hvcnQ=", key) // too short for a nonce
	assert.Error(t, err)
}
