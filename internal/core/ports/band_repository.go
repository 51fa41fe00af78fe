package ports

import (
	"context"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

// BandRepository defines persistence operations for bands.
// List returns bands ordered by bandname.
type BandRepository interface {
	Insert(ctx context.Context, b *domain.Band) (*domain.Band, error)
	FindByID(ctx context.Context, id string) (*domain.Band, error)
	List(ctx context.Context) ([]*domain.Band, error)
	Update(ctx context.Context, b *domain.Band) error
	Delete(ctx context.Context, id string) error
}
