package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func invokeRBAC(t *testing.T, role string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	if err := RBAC(allowed...)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	rec := invokeRBAC(t, "admin", "admin")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
}

func TestRBAC_ForbidsOtherRoles(t *testing.T) {
	rec := invokeRBAC(t, "staff", "admin")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Forbidden" {
		t.Fatalf("expected error %q, got %q", "Forbidden", body["error"])
	}
}

func TestRBAC_ForbidsMissingRole(t *testing.T) {
	rec := invokeRBAC(t, "", "admin")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when role claim is absent, got %d", rec.Code)
	}
}
