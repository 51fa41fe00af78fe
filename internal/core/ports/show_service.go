package ports

import (
	"context"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// CreateShowInput carries all data needed to create a show. ShowDate is
// YYYY-MM-DD and ShowTime is HH:MM:SS, validated at the handler boundary.
type CreateShowInput struct {
	ShowDate        string
	ShowTime        string
	ShowDescription string
	Location        string
	BandsPlaying    []string
	TicketPrice     float64
}

// UpdateShowInput is a partial update: nil fields keep stored values.
type UpdateShowInput struct {
	ShowDate        *string
	ShowTime        *string
	ShowDescription *string
	Location        *string
	BandsPlaying    *[]string
	TicketPrice     *float64
}

// ShowService defines use-case operations for shows.
type ShowService interface {
	List(ctx context.Context) ([]*domain.Show, error)
	Get(ctx context.Context, id string) (*domain.Show, error)
	Create(ctx context.Context, input CreateShowInput, p domain.Principal) (*domain.Show, error)
	Update(ctx context.Context, id string, input UpdateShowInput, p domain.Principal) (*domain.Show, error)
	Delete(ctx context.Context, id string, p domain.Principal) error
}
