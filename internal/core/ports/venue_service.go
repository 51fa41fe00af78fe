package ports

import (
	"context"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// CreateVenueInput carries all data needed to create a venue.
type CreateVenueInput struct {
	VenueName    string
	Location     string
	Capacity     int
	VenueManager string
}

// UpdateVenueInput is a partial update: nil fields keep stored values.
type UpdateVenueInput struct {
	VenueName    *string
	Location     *string
	Capacity     *int
	VenueManager *string
}

// VenueService defines use-case operations for venues. Mutations require a
// principal that owns the venue or holds the admin role.
type VenueService interface {
	List(ctx context.Context) ([]*domain.Venue, error)
	Get(ctx context.Context, id string) (*domain.Venue, error)
	Create(ctx context.Context, input CreateVenueInput, p domain.Principal) (*domain.Venue, error)
	Update(ctx context.Context, id string, input UpdateVenueInput, p domain.Principal) (*domain.Venue, error)
	Delete(ctx context.Context, id string, p domain.Principal) error
}
