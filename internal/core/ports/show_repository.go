package ports

import (
	"context"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// ShowRepository defines persistence operations for shows.
// List returns shows ordered by showdate, then showtime.
type ShowRepository interface {
	Insert(ctx context.Context, s *domain.Show) (*domain.Show, error)
	FindByID(ctx context.Context, id string) (*domain.Show, error)
	List(ctx context.Context) ([]*domain.Show, error)
	Update(ctx context.Context, s *domain.Show) error
	Delete(ctx context.Context, id string) error
}
