package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// CookieName is the browser cookie carrying the signed session reference.
const CookieName = "dashboard_session"

// Context keys populated by the Session middleware.
const (
	CtxSession = "session"
	CtxSid     = "sid"
	CtxState   = "session_state"
)

// Session restores the caller's session from the cookie and injects it into
// the request context. It never rejects a request by itself; the Guard
// decides whether an anonymous caller may proceed.
func Session(manager ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var cookieValue string
			if cookie, err := c.Cookie(CookieName); err == nil {
				cookieValue = cookie.Value
			}

			sess, sid, state := manager.Restore(c.Request().Context(), cookieValue)
			c.Set(CtxState, state)
			if state == domain.StateAuthenticated {
				c.Set(CtxSession, sess)
				c.Set(CtxSid, sid)
			}

			return next(c)
		}
	}
}
