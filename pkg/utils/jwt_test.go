package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "ana@loja.com", "attendant")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@loja.com", claims.Email)
	assert.Equal(t, "attendant", claims.Role)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("another-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "ana@loja.com", "attendant")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "ana@loja.com", "attendant")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGenerateNumbers_Prefixes(t *testing.T) {
	assert.Regexp(t, `^VND-[0-9A-F]{8}$`, GenerateSaleNo())
	assert.Regexp(t, `^OS-[0-9A-F]{8}$`, GenerateServiceOrderNo())
	assert.Regexp(t, `^GAR-2026-[0-9A-F]{8}$`, GenerateWarrantyProtocol(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "troca-de-tela-iphone-11", Slugify("Troca de Tela  iPhone 11!"))
}
