package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/api/middleware"
	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// ctxCaller extracts the caller injected by the Session middleware and
// performs a fast-fail check before any service call: a guarded route
// reached without a restored session means the middleware chain is
// misconfigured, so reject with 401 rather than proxy anonymously.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	sess, _ := c.Get(middleware.CtxSession).(*domain.Session)
	if sess == nil {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	sid, _ := c.Get(middleware.CtxSid).(string)
	return ports.Caller{Sid: sid, Session: sess}, nil
}
