package ports

import (
	"context"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// CreateBandInput carries all data needed to create a band.
type CreateBandInput struct {
	BandName        string
	Hometown        string
	Genre           string
	YearStarted     int
	MemberNames     []string
	BandPhoto       string
	BandDescription string
}

// UpdateBandInput is a partial update: nil fields keep stored values.
type UpdateBandInput struct {
	BandName        *string
	Hometown        *string
	Genre           *string
	YearStarted     *int
	MemberNames     *[]string
	BandPhoto       *string
	BandDescription *string
}

// BandService defines use-case operations for bands.
type BandService interface {
	List(ctx context.Context) ([]*domain.Band, error)
	Get(ctx context.Context, id string) (*domain.Band, error)
	Create(ctx context.Context, input CreateBandInput, p domain.Principal) (*domain.Band, error)
	Update(ctx context.Context, id string, input UpdateBandInput, p domain.Principal) (*domain.Band, error)
	Delete(ctx context.Context, id string, p domain.Principal) error
}
