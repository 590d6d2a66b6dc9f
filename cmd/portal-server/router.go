package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/doctorsportal/portal/internal/config"
	"github.com/doctorsportal/portal/internal/domain/billing"
	"github.com/doctorsportal/portal/internal/domain/booking"
	"github.com/doctorsportal/portal/internal/domain/catalog"
	"github.com/doctorsportal/portal/internal/domain/identity"
	"github.com/doctorsportal/portal/internal/domain/roster"
	"github.com/doctorsportal/portal/internal/platform/auth"
	"github.com/doctorsportal/portal/internal/platform/db"
	"github.com/doctorsportal/portal/internal/platform/middleware"
	"github.com/doctorsportal/portal/internal/platform/payments"
	"github.com/doctorsportal/portal/internal/platform/validation"
)

func buildRouter(cfg *config.Config, logger zerolog.Logger, repos *repositories, gateway payments.IntentGateway) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.Sanitize(logger))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	}))

	// Services. Booking records payments through billing and availability
	// reads bookings, so construction order matters.
	billingSvc := billing.NewService(repos.payments, gateway, cfg.PaymentCurrency)
	bookingSvc := booking.NewService(repos.bookings, billingSvc)
	catalogSvc := catalog.NewService(repos.appointments, bookingSvc)
	identitySvc := identity.NewService(repos.users, auth.NewTokenIssuer([]byte(cfg.JWTSecretKey), cfg.TokenTTL))
	rosterSvc := roster.NewService(repos.doctors)

	guards := auth.NewGuards([]byte(cfg.JWTSecretKey), identitySvc)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "successfully deploy"})
	})
	e.GET("/success", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "successfully"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
			"driver": cfg.StoreDriver,
		})
	})
	e.GET("/health/db", db.HealthHandler(repos.health))

	root := e.Group("")
	catalog.NewHandler(catalogSvc).RegisterRoutes(root)
	booking.NewHandler(bookingSvc).RegisterRoutes(root, guards)
	identity.NewHandler(identitySvc).RegisterRoutes(root, guards)
	roster.NewHandler(rosterSvc).RegisterRoutes(root, guards)
	billing.NewHandler(billingSvc).RegisterRoutes(root, guards)

	return e
}
