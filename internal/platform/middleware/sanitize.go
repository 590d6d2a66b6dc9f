package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const maxHeaderValueSize = 8192

// Patient and service names are echoed back into admin dashboards. Event
// handler attributes only match as whole words, so "json=" passes.
var scriptPattern = regexp.MustCompile(`(?i)(<script|javascript\s*:|\bon[a-z]+\s*=)`)

// Sanitize rejects requests carrying path traversal, null bytes, header
// injection, oversized headers or script fragments in query parameters.
func Sanitize(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path
			rawPath := req.URL.RawPath
			if rawPath == "" {
				rawPath = path
			}

			if containsPathTraversal(path) || containsPathTraversal(rawPath) {
				return reject(c, logger, "path traversal")
			}
			if containsNullByte(path) || containsNullByte(rawPath) {
				return reject(c, logger, "null byte in path")
			}

			for name, values := range req.Header {
				for _, v := range values {
					if len(v) > maxHeaderValueSize {
						return reject(c, logger, "oversized header "+name)
					}
					if strings.ContainsAny(v, "\r\n") {
						return reject(c, logger, "header injection in "+name)
					}
				}
			}

			for key, values := range req.URL.Query() {
				for _, v := range values {
					if containsNullByte(key) || containsNullByte(v) {
						return reject(c, logger, "null byte in query parameter")
					}
					if scriptPattern.MatchString(key) || scriptPattern.MatchString(v) {
						return reject(c, logger, "script in query parameter")
					}
				}
			}

			return next(c)
		}
	}
}

func containsPathTraversal(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(s, "..") ||
		strings.Contains(lower, "%2e%2e") ||
		strings.Contains(lower, "%252e")
}

func containsNullByte(s string) bool {
	return strings.ContainsRune(s, '\x00') || strings.Contains(strings.ToLower(s), "%00")
}

func reject(c echo.Context, logger zerolog.Logger, reason string) error {
	logger.Warn().
		Str("reason", reason).
		Str("path", c.Request().URL.Path).
		Str("remote_ip", c.RealIP()).
		Msg("request rejected")
	return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
}
