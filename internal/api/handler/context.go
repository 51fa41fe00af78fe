package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// ctxPrincipal reassembles the principal injected by the Auth middleware
// and fast-fails before any service call: a missing id or role means the
// middleware did not run or the token carried no usable identity.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	id, _ := c.Get("user_id").(string)
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)

	if id == "" || role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Principal{ID: id, Username: username, Role: role}, nil
}
