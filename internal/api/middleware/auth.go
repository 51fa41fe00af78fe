package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/api/metrics"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/pkg/token"
)

// Auth validates the bearer token and injects the principal into context.
// Handlers behind it can rely on user_id, username, and role being set.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token has expired")
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
