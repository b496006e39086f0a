package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebox/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, hasher.Check("admin123", hash))
	assert.False(t, hasher.Check("admin124", hash))
	assert.False(t, hasher.Check("admin123", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_DefaultsCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Check("pw", hash))
}
