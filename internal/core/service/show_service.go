package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/api/metrics"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
)

const showListKey = "shows:index"

// ShowService implements show CRUD with ownership enforcement on mutations.
type ShowService struct {
	repo   ports.ShowRepository
	cache  ports.ListCache
	logger zerolog.Logger
}

func NewShowService(repo ports.ShowRepository, cache ports.ListCache, logger zerolog.Logger) *ShowService {
	return &ShowService{repo: repo, cache: cache, logger: logger}
}

func (s *ShowService) List(ctx context.Context) ([]*domain.Show, error) {
	var cached []*domain.Show
	if hit, err := s.cache.Get(ctx, showListKey, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("show list cache read failed")
	} else if hit {
		metrics.ListCacheTotal.WithLabelValues("show", "hit").Inc()
		return cached, nil
	}
	metrics.ListCacheTotal.WithLabelValues("show", "miss").Inc()

	shows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, showListKey, shows); err != nil {
		s.logger.Warn().Err(err).Msg("show list cache write failed")
	}
	return shows, nil
}

func (s *ShowService) Get(ctx context.Context, id string) (*domain.Show, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ShowService) Create(ctx context.Context, input ports.CreateShowInput, p domain.Principal) (*domain.Show, error) {
	show := &domain.Show{
		ShowDate:        input.ShowDate,
		ShowTime:        input.ShowTime,
		ShowDescription: input.ShowDescription,
		Location:        input.Location,
		BandsPlaying:    input.BandsPlaying,
		TicketPrice:     input.TicketPrice,
		UserID:          p.ID,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, show)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("show", "create").Inc()
	s.logger.Info().Str("show_id", created.ID).Str("user_id", p.ID).Msg("show created")
	return created, nil
}

func (s *ShowService) Update(ctx context.Context, id string, input ports.UpdateShowInput, p domain.Principal) (*domain.Show, error) {
	show, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanMutate(show.UserID) {
		return nil, domain.ErrUnauthorized
	}

	if input.ShowDate != nil {
		show.ShowDate = *input.ShowDate
	}
	if input.ShowTime != nil {
		show.ShowTime = *input.ShowTime
	}
	if input.ShowDescription != nil {
		show.ShowDescription = *input.ShowDescription
	}
	if input.Location != nil {
		show.Location = *input.Location
	}
	if input.BandsPlaying != nil {
		show.BandsPlaying = *input.BandsPlaying
	}
	if input.TicketPrice != nil {
		show.TicketPrice = *input.TicketPrice
	}

	if err := s.repo.Update(ctx, show); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("show", "update").Inc()
	return show, nil
}

func (s *ShowService) Delete(ctx context.Context, id string, p domain.Principal) error {
	show, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanMutate(show.UserID) {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("show", "delete").Inc()
	s.logger.Info().Str("show_id", id).Str("user_id", p.ID).Msg("show deleted")
	return nil
}

func (s *ShowService) invalidateList(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, showListKey); err != nil {
		s.logger.Warn().Err(err).Msg("show list cache invalidation failed")
	}
}
