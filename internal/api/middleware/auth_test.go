package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/pkg/token"
)

func invokeAuth(t *testing.T, codec *token.Codec, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return nil }
	return c, Auth(codec)(next)(c)
}

func assertUnauthorized(t *testing.T, err error, message string) {
	t.Helper()

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
	if httpErr.Message != message {
		t.Fatalf("expected message %q, got %v", message, httpErr.Message)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	codec := token.NewCodec("secret", 0)
	tok, err := codec.Issue("user_1", "alice", "admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	c, err := invokeAuth(t, codec, "Bearer "+tok)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}

	if got, _ := c.Get("user_id").(string); got != "user_1" {
		t.Fatalf("expected user_id claim in context, got %q", got)
	}
	if got, _ := c.Get("username").(string); got != "alice" {
		t.Fatalf("expected username claim in context, got %q", got)
	}
	if got, _ := c.Get("role").(string); got != "admin" {
		t.Fatalf("expected role claim in context, got %q", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, token.NewCodec("secret", 0), "")
	assertUnauthorized(t, err, "missing authorization header")
}

func TestAuth_MalformedHeader(t *testing.T) {
	codec := token.NewCodec("secret", 0)
	tok, err := codec.Issue("user_1", "alice", "staff")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	for _, header := range []string{"Basic abc123", tok} {
		_, err := invokeAuth(t, codec, header)
		assertUnauthorized(t, err, "invalid authorization header")
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	codec := token.NewCodec("secret", 0)

	tok, err := token.NewCodec("other-secret", 0).Issue("user_1", "alice", "staff")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, invokeErr := invokeAuth(t, codec, "Bearer "+tok)
	assertUnauthorized(t, invokeErr, "invalid token")

	_, invokeErr = invokeAuth(t, codec, "Bearer not.a.jwt")
	assertUnauthorized(t, invokeErr, "invalid token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	codec := token.NewCodec("secret", time.Millisecond)
	tok, err := codec.Issue("user_1", "alice", "staff")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, invokeErr := invokeAuth(t, codec, "Bearer "+tok)
	assertUnauthorized(t, invokeErr, "token has expired")
}
