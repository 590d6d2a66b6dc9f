package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *echo.Group) {
	r.GET("/services", h.ListServices)
	r.GET("/available", h.Available)
}

func (h *Handler) ListServices(c echo.Context) error {
	items, err := h.svc.ListNames(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}
	if items == nil {
		items = []Summary{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Available(c echo.Context) error {
	items, err := h.svc.Available(c.Request().Context(), c.QueryParam("date"))
	if errors.Is(err, ErrDateRequired) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}
	return c.JSON(http.StatusOK, items)
}
