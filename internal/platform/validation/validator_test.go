package validation

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type sample struct {
	Email string  `json:"email" validate:"required,email"`
	Price float64 `json:"price" validate:"gt=0"`
}

func TestValidator_Valid(t *testing.T) {
	if err := New().Validate(&sample{Email: "a@example.com", Price: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&sample{Email: "not-an-email", Price: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
	msg, _ := httpErr.Message.(string)
	if !strings.Contains(msg, "email: email") {
		t.Errorf("expected email field in message, got %q", msg)
	}
	if !strings.Contains(msg, "price: gt=0") {
		t.Errorf("expected price field in message, got %q", msg)
	}
}

func TestDescribe_NonValidationError(t *testing.T) {
	err := New().v.Struct(42)
	if got := Describe(err); got == "" {
		t.Error("expected a message for non-struct input")
	}
}
