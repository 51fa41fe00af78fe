package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/pkg/password"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, token.NewCodec("secret", 0), zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	result, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "s3cr3t"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.Role != domain.RoleStaff {
		t.Fatalf("expected default role staff, got %s", result.User.Role)
	}

	stored := repo.users["alice"]
	if stored.PasswordHash == "s3cr3t" {
		t.Fatalf("expected password to be hashed")
	}
	if !password.Verify("s3cr3t", stored.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Signup_TokenMatchesUser(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	result, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "s3cr3t", Role: "admin"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	claims, err := token.NewCodec("secret", 0).Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Username != "alice" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "", Password: "x"}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "bob", Password: ""}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestAuthService_Signup_RoleNormalized(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	result, err := svc.Signup(context.Background(), ports.SignupInput{Username: "bob", Password: "pass", Role: "superuser"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.User.Role != domain.RoleStaff {
		t.Fatalf("expected unknown role to normalize to staff, got %s", result.User.Role)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "bob", Password: "pass"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "bob", Password: "pass2"}); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate signup must not mutate the store")
	}
}

func TestAuthService_Signin_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "carol", Password: "s3cret", Role: "admin"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Signin(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if result.User.Username != "carol" {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	claims, err := token.NewCodec("secret", 0).Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Username != "carol" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Signin_NonEnumerable(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "dave", Password: "goodpass"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Wrong password and unknown username must be indistinguishable.
	_, badPass := svc.Signin(context.Background(), "dave", "badpass")
	_, noUser := svc.Signin(context.Background(), "ghost", "whatever")

	if !errors.Is(badPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", badPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown username: expected ErrInvalidCredentials, got %v", noUser)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	result, err := svc.Signup(context.Background(), ports.SignupInput{Username: "erin", Password: "pass"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), result.User.ID)
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if user.Username != "erin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ListUsers_AdminOnly(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "frank", Password: "pass"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, err := svc.ListUsers(context.Background(), domain.RoleStaff); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for staff, got %v", err)
	}

	users, err := svc.ListUsers(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 1 || users[0].Username != "frank" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
