package jwtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehashetty510/adcraft-api/pkg/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	companyID := uint(7)
	token, err := GenerateToken("alice@acme.com", 42, &companyID, "company_admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@acme.com", claims.Email)
	assert.Equal(t, uint(42), claims.UserID)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, uint(7), *claims.CompanyID)
	assert.Equal(t, "company_admin", claims.Role)
}

func TestTokenWithoutCompany(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	token, err := GenerateToken("solo@example.com", 9, nil, "user")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.CompanyID)
}

func TestExpiredTokenRejected(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: -1})

	token, err := GenerateToken("alice@acme.com", 42, nil, "user")
	require.NoError(t, err)

	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestWrongKeyRejected(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	token, err := GenerateToken("alice@acme.com", 42, nil, "user")
	require.NoError(t, err)

	Initialize(&config.JWTConfig{SigningKey: "a-different-key", ExpirationHours: 1})
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestUninitializedPackage(t *testing.T) {
	Initialize(nil)
	defer Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	_, err := GenerateToken("alice@acme.com", 42, nil, "user")
	assert.Error(t, err)

	_, err = ValidateToken("anything")
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
