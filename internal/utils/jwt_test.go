package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(testSecret, "user-1", "patient")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(testSecret, token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "patient", claims.Role)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWTWithoutSecret(t *testing.T) {
	_, err := GenerateJWT(nil, "user-1", "patient")
	require.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT(testSecret, "not.a.token")
	require.Error(t, err)

	_, err = ValidateJWT(testSecret, "")
	require.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT([]byte("other-secret"), "user-1", "admin")
	require.NoError(t, err)

	_, err = ValidateJWT(testSecret, token)
	require.Error(t, err)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	token, err := GenerateJWT(testSecret, "user-1", "patient")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateJWT(testSecret, tampered)
	require.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	claims := &Claims{
		UserID: "user-1",
		Role:   "patient",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(testSecret, expired)
	require.Error(t, err)
}
