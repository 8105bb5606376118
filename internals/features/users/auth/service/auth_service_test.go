package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelku_backend/internals/configs"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hashed)

	assert.True(t, CheckPassword(hashed, "correct horse battery"))
	assert.False(t, CheckPassword(hashed, "wrong password"))
}

func TestGenerateTokensCarriesClaims(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	userID := uuid.New()
	access, refresh, err := GenerateTokens(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(access, claims, func(tok *jwt.Token) (any, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "admin", claims["user_role"])
	assert.NotEmpty(t, claims["exp"])

	refreshClaims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(refresh, refreshClaims, func(tok *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, userID.String(), refreshClaims["user_id"])
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	access, _, err := GenerateTokens(uuid.New(), "user")
	require.NoError(t, err)

	_, err = jwt.Parse(access, func(tok *jwt.Token) (any, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}

func TestRandomPasswordIsHashedAndUnique(t *testing.T) {
	a, err := RandomPassword()
	require.NoError(t, err)
	b, err := RandomPassword()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.True(t, len(a) > 40)
}
