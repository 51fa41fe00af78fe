package ports

import (
	"context"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// SignupInput carries the fields accepted on signup. Role is optional and
// normalized to staff when absent or unrecognized.
type SignupInput struct {
	Username string
	Password string
	Role     string
}

// AuthResult pairs a credential view with its freshly issued token.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines the signup/signin use cases plus principal lookups.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Signin(ctx context.Context, username, password string) (*AuthResult, error)
	// CurrentUser resolves the acting principal's stored record.
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
	// ListUsers returns all credential views; callers without the admin
	// role fail with domain.ErrForbidden.
	ListUsers(ctx context.Context, callerRole string) ([]*domain.User, error)
}
