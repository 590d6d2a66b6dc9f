package booking

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doctorsportal/portal/internal/platform/auth"
	"github.com/doctorsportal/portal/internal/platform/store"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *echo.Group, guards auth.Guards) {
	r.POST("/booking", h.CreateBooking)
	r.GET("/booking", h.ListBookings, guards.Identity)
	r.GET("/booking/:id", h.GetBooking, guards.Identity)
	r.PATCH("/booking/:id", h.MarkPaid, guards.Identity)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var b Booking
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&b); err != nil {
		return err
	}
	res, err := h.svc.Create(c.Request().Context(), &b)
	if err != nil {
		return httpError(err)
	}
	if !res.Success {
		return c.JSON(http.StatusOK, res)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListBookings(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.svc.ListByOwner(ctx, auth.EmailFromContext(ctx), c.QueryParam("patient"))
	if err != nil {
		return httpError(err)
	}
	if items == nil {
		items = []*Booking{}
	}
	return c.JSON(http.StatusOK, items)
}

// GetBooking answers 200 with a null body for ids that match nothing.
func (h *Handler) GetBooking(c echo.Context) error {
	b, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusOK, nil)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) MarkPaid(c echo.Context) error {
	var sub PaymentSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&sub); err != nil {
		return err
	}
	res, err := h.svc.MarkPaid(c.Request().Context(), c.Param("id"), sub)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	case errors.Is(err, ErrNotOwner):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	case errors.Is(err, ErrAlreadyPaid):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}
}
