package service

import (
	"time"

	"service-marketplace-be/internal/pkg/serverutils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 7 * 24 * time.Hour

func issueToken(secret string, id uuid.UUID, phone, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":    id.String(),
		"phone": phone,
		"role":  role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", serverutils.Unavailable("failed to sign token", err)
	}
	return signed, nil
}
