package middleware

import (
	"errors"
	"strings"

	"jobskills/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxUserIDKey = "user_id"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)

		return c.Next()
	}
}

// UserID returns the authenticated user id stored by the middleware.
func UserID(c fiber.Ctx) string {
	id, _ := c.Locals(CtxUserIDKey).(string)
	return id
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
