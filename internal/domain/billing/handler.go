package billing

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doctorsportal/portal/internal/platform/auth"
	"github.com/doctorsportal/portal/internal/platform/payments"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *echo.Group, guards auth.Guards) {
	r.POST("/create-payment-intent", h.CreatePaymentIntent, guards.Identity)
}

func (h *Handler) CreatePaymentIntent(c echo.Context) error {
	var req IntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res, err := h.svc.CreateIntent(c.Request().Context(), req.Price)
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, payments.ErrNotConfigured):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "payments are not available").SetInternal(err)
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "payment processor error").SetInternal(err)
	}
	return c.JSON(http.StatusOK, res)
}
