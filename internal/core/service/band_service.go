package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/api/metrics"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
)

const bandListKey = "bands:index"

// BandService implements band CRUD with ownership enforcement on mutations.
type BandService struct {
	repo   ports.BandRepository
	cache  ports.ListCache
	logger zerolog.Logger
}

func NewBandService(repo ports.BandRepository, cache ports.ListCache, logger zerolog.Logger) *BandService {
	return &BandService{repo: repo, cache: cache, logger: logger}
}

func (s *BandService) List(ctx context.Context) ([]*domain.Band, error) {
	var cached []*domain.Band
	if hit, err := s.cache.Get(ctx, bandListKey, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("band list cache read failed")
	} else if hit {
		metrics.ListCacheTotal.WithLabelValues("band", "hit").Inc()
		return cached, nil
	}
	metrics.ListCacheTotal.WithLabelValues("band", "miss").Inc()

	bands, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, bandListKey, bands); err != nil {
		s.logger.Warn().Err(err).Msg("band list cache write failed")
	}
	return bands, nil
}

func (s *BandService) Get(ctx context.Context, id string) (*domain.Band, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BandService) Create(ctx context.Context, input ports.CreateBandInput, p domain.Principal) (*domain.Band, error) {
	band := &domain.Band{
		BandName:        input.BandName,
		Hometown:        input.Hometown,
		Genre:           input.Genre,
		YearStarted:     input.YearStarted,
		MemberNames:     input.MemberNames,
		BandPhoto:       input.BandPhoto,
		BandDescription: input.BandDescription,
		UserID:          p.ID,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, band)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("band", "create").Inc()
	s.logger.Info().Str("band_id", created.ID).Str("user_id", p.ID).Msg("band created")
	return created, nil
}

func (s *BandService) Update(ctx context.Context, id string, input ports.UpdateBandInput, p domain.Principal) (*domain.Band, error) {
	band, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanMutate(band.UserID) {
		return nil, domain.ErrUnauthorized
	}

	if input.BandName != nil {
		band.BandName = *input.BandName
	}
	if input.Hometown != nil {
		band.Hometown = *input.Hometown
	}
	if input.Genre != nil {
		band.Genre = *input.Genre
	}
	if input.YearStarted != nil {
		band.YearStarted = *input.YearStarted
	}
	if input.MemberNames != nil {
		band.MemberNames = *input.MemberNames
	}
	if input.BandPhoto != nil {
		band.BandPhoto = *input.BandPhoto
	}
	if input.BandDescription != nil {
		band.BandDescription = *input.BandDescription
	}

	if err := s.repo.Update(ctx, band); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("band", "update").Inc()
	return band, nil
}

func (s *BandService) Delete(ctx context.Context, id string, p domain.Principal) error {
	band, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanMutate(band.UserID) {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateList(ctx)
	metrics.MutationsTotal.WithLabelValues("band", "delete").Inc()
	s.logger.Info().Str("band_id", id).Str("user_id", p.ID).Msg("band deleted")
	return nil
}

func (s *BandService) invalidateList(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, bandListKey); err != nil {
		s.logger.Warn().Err(err).Msg("band list cache invalidation failed")
	}
}
