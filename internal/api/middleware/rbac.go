package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC gates a route by role. It must run after Auth so the role claim is
// already in context; an unknown or missing role is forbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
			}
			return next(c)
		}
	}
}
