package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RoleUser, RoleAgent and RoleAdmin are the role claim values issued at login.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

func parseToken(ctx *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, Unauthorized("Missing token")
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, Unauthorized("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, Unauthorized("Invalid claims")
	}
	return claims, nil
}

// JwtMiddleware authenticates any role and stores the subject id and role in
// ctx.Locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, err := parseToken(ctx)
	if err != nil {
		return err
	}

	ctx.Locals("user_id", claims["id"])
	ctx.Locals("role", claims["role"])
	return ctx.Next()
}

// RequireRole builds a middleware that additionally gates on the role claim.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := parseToken(ctx)
		if err != nil {
			return err
		}

		if claims["role"] != role {
			return Forbidden("Insufficient role")
		}

		ctx.Locals("user_id", claims["id"])
		ctx.Locals("role", claims["role"])
		return ctx.Next()
	}
}
