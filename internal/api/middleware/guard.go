package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
)

// LoginPath is where unauthenticated dashboard requests are redirected.
const LoginPath = "/login"

// publicPrefixes are the paths anyone may reach without a session: the
// landing pages, the auth endpoints themselves, static assets, and the
// operational surface.
var publicPrefixes = []string{
	"/login",
	"/register",
	"/contact",
	"/api/auth",
	"/static",
	"/favicon.ico",
	"/health",
	"/metrics",
	"/swagger",
}

// protectedPrefix is the subtree requiring a session.
const protectedPrefix = "/dashboard"

// Guard blocks navigation into the dashboard without a session. The decision
// is based solely on locally restorable session presence — the upstream
// token's validity is deliberately not checked here, so a stale token passes
// the guard and is only caught on the first proxied call. Anything outside
// the protected subtree passes through untouched.
func Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if path == "/" || isPublic(path) || !strings.HasPrefix(path, protectedPrefix) {
				return next(c)
			}

			state, _ := c.Get(CtxState).(domain.SessionState)
			if state != domain.StateAuthenticated {
				if wantsJSON(c) {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return c.Redirect(http.StatusFound, LoginPath)
			}

			return next(c)
		}
	}
}

func isPublic(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// wantsJSON reports whether the caller is an API consumer rather than a
// browser navigation; redirects make no sense for those.
func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) &&
		!strings.Contains(accept, echo.MIMETextHTML)
}
