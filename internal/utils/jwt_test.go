package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "staffdir"
	testSignKey = "test-sign-key"
	testUserID  = "3f2c9d1e-0000-0000-0000-000000000001"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testUserID, token.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	t.Run("empty issuer", func(t *testing.T) {
		_, err := GenerateJWTToken("", testUserID, time.Hour, testSignKey)
		require.Error(t, err)
	})

	t.Run("empty user id", func(t *testing.T) {
		_, err := GenerateJWTToken(testIssuer, "", time.Hour, testSignKey)
		require.Error(t, err)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := GenerateJWTToken(testIssuer, testUserID, 0, testSignKey)
		require.Error(t, err)
	})

	t.Run("empty sign key", func(t *testing.T) {
		_, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, "")
		require.Error(t, err)
	})
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUserID, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired), "expected wrapped jwt.ErrTokenExpired, got %v", err)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	require.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("someone-else", testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt-token", testSignKey, testIssuer)
	require.Error(t, err)
}
