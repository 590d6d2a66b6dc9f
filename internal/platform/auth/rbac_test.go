package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubChecker struct {
	admins map[string]bool
	err    error
	calls  int
}

func (s *stubChecker) IsAdmin(_ context.Context, email string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.admins[email], nil
}

func runRequireAdmin(t *testing.T, checker AdminChecker, email string) (bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	if email != "" {
		req = req.WithContext(WithEmail(req.Context(), email))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var called bool
	handler := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	err := RequireAdmin(checker)(handler)(c)
	return called, err
}

func TestRequireAdmin_Allowed(t *testing.T) {
	checker := &stubChecker{admins: map[string]bool{"root@example.com": true}}
	called, err := runRequireAdmin(t, checker, "root@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("handler was not called")
	}
}

func TestRequireAdmin_NotAdmin(t *testing.T) {
	checker := &stubChecker{admins: map[string]bool{"root@example.com": true}}
	called, err := runRequireAdmin(t, checker, "user@example.com")
	assertHTTPError(t, err, http.StatusForbidden)
	if called {
		t.Error("handler must not run for non-admins")
	}
}

func TestRequireAdmin_NoIdentity(t *testing.T) {
	checker := &stubChecker{}
	_, err := runRequireAdmin(t, checker, "")
	assertHTTPError(t, err, http.StatusUnauthorized)
	if checker.calls != 0 {
		t.Error("checker must not be consulted without an identity")
	}
}

func TestRequireAdmin_CheckerError(t *testing.T) {
	checker := &stubChecker{err: errors.New("store down")}
	called, err := runRequireAdmin(t, checker, "root@example.com")
	assertHTTPError(t, err, http.StatusInternalServerError)
	if called {
		t.Error("handler must not run when the role lookup fails")
	}
}

func TestRequireAdmin_RecheckedEveryRequest(t *testing.T) {
	checker := &stubChecker{admins: map[string]bool{"root@example.com": true}}
	if _, err := runRequireAdmin(t, checker, "root@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	delete(checker.admins, "root@example.com")
	_, err := runRequireAdmin(t, checker, "root@example.com")
	assertHTTPError(t, err, http.StatusForbidden)
	if checker.calls != 2 {
		t.Errorf("expected 2 lookups, got %d", checker.calls)
	}
}
