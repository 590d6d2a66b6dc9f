package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminChecker reports whether the user stored under email holds the admin
// role. Unknown emails are not admins.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin must be chained after JWTMiddleware. The requester's record
// is re-read on every request so a demotion or deletion takes effect
// immediately.
func RequireAdmin(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			email := EmailFromContext(ctx)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			isAdmin, err := checker.IsAdmin(ctx, email)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to verify admin role").SetInternal(err)
			}
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}
			return next(c)
		}
	}
}

// Guards bundles the route middleware handed to domain handlers.
type Guards struct {
	Identity echo.MiddlewareFunc
	Admin    echo.MiddlewareFunc
}

func NewGuards(signingKey []byte, checker AdminChecker) Guards {
	return Guards{
		Identity: JWTMiddleware(JWTConfig{SigningKey: signingKey}),
		Admin:    RequireAdmin(checker),
	}
}

// AdminOnly returns the identity and admin guards in the order they must run.
func (g Guards) AdminOnly() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.Identity, g.Admin}
}
