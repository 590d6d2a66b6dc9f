package identity

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
	admin := guards.AdminOnly()

	r.PUT("/user/:email", h.UpsertProfile)
	r.GET("/user/admin/:email", h.CheckAdmin, guards.Identity)
	r.PUT("/user/admin/:email", h.PromoteAdmin, admin...)
	r.GET("/users", h.ListUsers, admin...)
	r.DELETE("/user/:email", h.DeleteUser, admin...)
}

type emailParam struct {
	Email string `validate:"required,email"`
}

func emailFromPath(c echo.Context) (string, error) {
	p := emailParam{Email: c.Param("email")}
	if err := c.Validate(&p); err != nil {
		return "", err
	}
	return p.Email, nil
}

func (h *Handler) UpsertProfile(c echo.Context) error {
	email, err := emailFromPath(c)
	if err != nil {
		return err
	}
	var p ProfileUpdate
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	res, err := h.svc.UpsertProfile(c.Request().Context(), email, p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) PromoteAdmin(c echo.Context) error {
	email, err := emailFromPath(c)
	if err != nil {
		return err
	}
	res, err := h.svc.PromoteAdmin(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if users == nil {
		users = []*User{}
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	res, err := h.svc.Delete(c.Request().Context(), c.Param("email"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CheckAdmin(c echo.Context) error {
	isAdmin, err := h.svc.IsAdmin(c.Request().Context(), c.Param("email"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"admin": isAdmin})
}

func httpError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
}
