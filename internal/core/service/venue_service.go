package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/api/metrics"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
)

const venueListKey = "venues:index"

// VenueService implements venue CRUD with ownership enforcement on mutations.
type VenueService struct {
	repo   ports.VenueRepository
	cache  ports.ListCache
	logger zerolog.Logger
}

func NewVenueService(repo ports.VenueRepository, cache ports.ListCache, logger zerolog.Logger) *VenueService {
	return &VenueService{repo: repo, cache: cache, logger: logger}
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	var cached []*domain.Venue
	if hit, err := s.cache.Get(ctx, venueListKey, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("venue list cache read failed")
	} else if hit {
		metrics.ListCacheTotal.WithLabelValues("venue", "hit").Inc()
		return cached, nil
	}
	metrics.ListCacheTotal.WithLabelValues("venue", "miss").Inc()

	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, venueListKey, venues); err != nil {
		s.logger.Warn().Err(err).Msg("venue list cache write failed")
	}
	return venues, nil
}

func (s *VenueService) Get(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VenueService) Create(ctx context.Context, input ports.CreateVenueInput, p domain.Principal) (*domain.Venue, error) {
	venue := &domain.Venue{
		VenueName:    input.VenueName,
		Location:     input.Location,
		Capacity:     input.Capacity,
		VenueManager: input.VenueManager,
		UserID:       p.ID,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, venue)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("venue", "create").Inc()
	s.logger.Info().Str("venue_id", created.ID).Str("user_id", p.ID).Msg("venue created")
	return created, nil
}

func (s *VenueService) Update(ctx context.Context, id string, input ports.UpdateVenueInput, p domain.Principal) (*domain.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanMutate(venue.UserID) {
		return nil, domain.ErrUnauthorized
	}

	if input.VenueName != nil {
		venue.VenueName = *input.VenueName
	}
	if input.Location != nil {
		venue.Location = *input.Location
	}
	if input.Capacity != nil {
		venue.Capacity = *input.Capacity
	}
	if input.VenueManager != nil {
		venue.VenueManager = *input.VenueManager
	}

	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("venue", "update").Inc()
	return venue, nil
}

func (s *VenueService) Delete(ctx context.Context, id string, p domain.Principal) error {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanMutate(venue.UserID) {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("venue", "delete").Inc()
	s.logger.Info().Str("venue_id", id).Str("user_id", p.ID).Msg("venue deleted")
	return nil
}

func (s *VenueService) invalidateList(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, venueListKey); err != nil {
		s.logger.Warn().Err(err).Msg("venue list cache invalidation failed")
	}
}
