package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
)

// AuthHandler handles signup, signin, and principal lookups.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup creates a new account and returns it with a signed token.
//
// @Summary      Sign up a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, User: result.User})
}

// Signin authenticates an existing user and returns a signed token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Signin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: result.User})
}

// Me returns the stored record behind the presented token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.service.CurrentUser(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// ListUsers returns every account. The RBAC middleware admits only admins;
// the service re-checks the role so the rule holds without the router too.
//
// @Summary      List all users (admin only)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListUsers(c.Request().Context(), p.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}
