package ports

import "context"

// ListCache is a read-through cache for the public list endpoints. Get
// reports a miss with (false, nil); cache failures are surfaced so callers
// can log and fall through to the repository.
type ListCache interface {
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}
