package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const UserEmailKey contextKey = "user_email"

// Claims is the session credential payload. Email identifies the caller;
// Subject carries the same value for standard JWT tooling.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type JWTConfig struct {
	SigningKey []byte
}

// JWTMiddleware rejects requests without an Authorization header with 401
// and requests whose bearer credential cannot be verified with 403. On
// success the caller's email is stored on the request context.
func JWTMiddleware(cfg JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			scheme, tokenStr, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(tokenStr) == "" {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			claims, err := ParseToken(strings.TrimSpace(tokenStr), cfg.SigningKey)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			c.Set(string(UserEmailKey), claims.Email)
			ctx := WithEmail(c.Request().Context(), claims.Email)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// WithEmail returns a copy of ctx carrying the authenticated email.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailKey, email)
}

func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(UserEmailKey).(string)
	return email
}
