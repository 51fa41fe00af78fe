package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var (
	ErrMissingField       = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

// User models a stored credential record. The password hash never leaves
// the server: it is excluded from JSON and only read by signin.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the verified identity decoded from a bearer token. It lives
// for the duration of a single request and is never persisted.
type Principal struct {
	ID       string
	Username string
	Role     string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanMutate reports whether the principal may update or delete a resource
// created by ownerID. Admins override ownership on every resource.
func (p Principal) CanMutate(ownerID string) bool {
	return p.IsAdmin() || (p.ID != "" && p.ID == ownerID)
}

// NormalizeRole maps any unrecognized or absent role to staff.
func NormalizeRole(role string) string {
	if role == RoleAdmin || role == RoleStaff {
		return role
	}
	return RoleStaff
}
