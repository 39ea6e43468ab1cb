package security

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	TokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

	tokenString, err := GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	userID, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	TokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

	tokenString, err := GenerateToken("user-123")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(TokenAuth, tokenString+"x")
	assert.Error(t, err)

	_, err = jwtauth.VerifyToken(TokenAuth, "not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsForeignKey(t *testing.T) {
	other := jwtauth.New("HS256", []byte("other-secret"), nil)
	_, foreign, err := other.Encode(map[string]interface{}{"user_id": "user-123"})
	require.NoError(t, err)

	TokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)
	_, err = jwtauth.VerifyToken(TokenAuth, foreign)
	assert.Error(t, err)
}

func TestUserIDFromClaims(t *testing.T) {
	_, err := UserIDFromClaims(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = UserIDFromClaims(jwt.MapClaims{"user_id": 42})
	assert.Error(t, err)

	id, err := UserIDFromClaims(jwt.MapClaims{"user_id": "u-1"})
	assert.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
}
