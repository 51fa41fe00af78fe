package ports

import (
	"context"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// VenueRepository defines persistence operations for venues.
// List returns venues ordered by venuename.
type VenueRepository interface {
	Insert(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	FindByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	Delete(ctx context.Context, id string) error
}
