package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/doctorsportal/portal/internal/domain/booking"
)

func TestHandler_ListServices(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListServices(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 services, got %d", len(items))
	}
	if _, ok := items[0]["slots"]; ok {
		t.Error("service listing must only carry id and name")
	}
	if items[0]["name"] != "Dental" || items[0]["_id"] != "1" {
		t.Errorf("unexpected first item %v", items[0])
	}
}

func TestHandler_Available(t *testing.T) {
	svc, _ := newTestService(&booking.Booking{AppointName: "Dental", AppointmentDate: "2024-01-01", Slot: "10AM"})
	h := NewHandler(svc)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/available?date=2024-01-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Available(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var items []AppointmentType
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items[0].Slots) != 2 {
		t.Errorf("expected 10AM removed from Dental, got %v", items[0].Slots)
	}
}

func TestHandler_Available_MissingDate(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/available", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Available(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
