package middleware

import (
	"net/http"
	"strings"

	"roomatch/internal/infrastructure/auth"

	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	tokens *auth.JWTManager
}

func NewAuthMiddleware(tokens *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", claims.UserID)

		return next(c)
	}
}

// UserIDFromToken resolves a raw token outside the middleware chain.
// The WebSocket endpoint uses it for token-in-query authentication.
func (m *AuthMiddleware) UserIDFromToken(token string) (string, error) {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
