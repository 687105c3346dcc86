package service

import (
	"testing"
	"time"

	"service-marketplace-be/internal/pkg/serverutils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenClaims(t *testing.T) {
	secret := "test-secret"
	id := uuid.New()

	signed, err := issueToken(secret, id, "+911234567890", serverutils.RoleAgent)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, id.String(), claims["id"])
	assert.Equal(t, "+911234567890", claims["phone"])
	assert.Equal(t, serverutils.RoleAgent, claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(tokenTTL), exp.Time, time.Minute)
}

func TestIssueTokenRejectsWrongSecret(t *testing.T) {
	signed, err := issueToken("right-secret", uuid.New(), "+911111111111", serverutils.RoleUser)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
