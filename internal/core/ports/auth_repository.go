package ports

import (
	"context"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// UserRepository defines persistence for credential records.
//
// Create must enforce username uniqueness at the storage layer and return
// domain.ErrUsernameTaken on a duplicate, so two concurrent signups cannot
// both slip past the service's fast-path existence check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
