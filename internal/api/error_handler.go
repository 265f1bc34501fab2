package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/comandero/dashboard-gateway/internal/api/middleware"
	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - On domain.ErrUnauthorized from a proxied call, tears down the session,
//     expires the cookie, and sends browsers back to /login. This handler is
//     the only place that reacts to an upstream 401; the transport layer just
//     raises the typed error.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(manager ports.SessionManager, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrUnauthorized) {
			handleUnauthorized(manager, c)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// handleUnauthorized clears the dead session and steers the caller to /login.
// Browser navigations get a redirect; API consumers get a 401 JSON body.
func handleUnauthorized(manager ports.SessionManager, c echo.Context) {
	if sid, _ := c.Get(middleware.CtxSid).(string); sid != "" {
		manager.Teardown(c.Request().Context(), sid)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	accept := c.Request().Header.Get(echo.HeaderAccept)
	if strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML) {
		_ = c.JSON(http.StatusUnauthorized, errorResponse{Error: "session expired"})
		return
	}
	_ = c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "no session"
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "upstream request failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
