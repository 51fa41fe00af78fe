package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/api/metrics"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/pkg/password"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/pkg/token"
)

// AuthService implements signup, signin, and principal lookups.
type AuthService struct {
	repo   ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrMissingField
	}
	role := domain.NormalizeRole(input.Role)

	// Fast-path existence check; the unique index on username is what
	// actually decides a concurrent race.
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	tok, err := s.codec.Issue(created.ID, created.Username, created.Role)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(created.Role).Inc()
	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user signed up")

	return &ports.AuthResult{Token: tok, User: created}, nil
}

func (s *AuthService) Signin(ctx context.Context, username, pass string) (*ports.AuthResult, error) {
	if username == "" || pass == "" {
		metrics.SigninsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same error as a bad password so usernames cannot be enumerated.
			metrics.SigninsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		metrics.SigninsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Msg("user signed in")

	return &ports.AuthResult{Token: tok, User: user}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context, callerRole string) ([]*domain.User, error) {
	if callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}
