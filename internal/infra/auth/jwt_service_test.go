package auth

import (
	"testing"
	"time"

	"vault/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing")

	// Create JWT service
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	// Test data
	userID := uuid.New()
	email := "owner@example.com"

	// Generate token
	token, err := jwtService.GenerateToken(userID, email)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate token
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.ValidateToken(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("secret_one_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), "owner@example.com")
	assert.NoError(t, err)

	other, err := NewJWTService(testConfig("secret_two_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testConfig("")

	// Should fail to create service
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_GetTokenDuration(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{TokenDuration: time.Hour * 2}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	assert.Equal(t, time.Hour*2, jwtService.GetTokenDuration())
}

func TestJWTService_DefaultTokenDuration(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	assert.Equal(t, time.Hour*24, jwtService.GetTokenDuration())
}
