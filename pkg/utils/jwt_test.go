package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateJWTToken(t *testing.T) {
	token, err := CreateJWTToken("test@gmail.com", "test", "secret", time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "test@gmail.com", claims["email"])
	assert.Equal(t, "test", claims["name"])

	exp := int64(claims["exp"].(float64))
	assert.Greater(t, exp, time.Now().Unix())
}

func Test_CreateJWTToken_WrongSecret(t *testing.T) {
	token, err := CreateJWTToken("test@gmail.com", "test", "secret", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func Test_CreateJWTToken_Expired(t *testing.T) {
	token, err := CreateJWTToken("test@gmail.com", "test", "secret", -time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.Error(t, err)
	if parsed != nil {
		assert.False(t, parsed.Valid)
	}
}
