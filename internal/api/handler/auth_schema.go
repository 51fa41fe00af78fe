package handler

import "github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role is optional; anything other than admin or staff becomes staff.
	Role string `json:"role" validate:"omitempty,oneof=admin staff"`
}

type signinRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
