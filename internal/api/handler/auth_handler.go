package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/api/middleware"
	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// AuthHandler owns the public session endpoints. Login sets the session
// cookie; logout clears it. Everything else about the session lifecycle lives
// in the session manager.
type AuthHandler struct {
	manager ports.SessionManager
	ttl     time.Duration
	secure  bool
}

func NewAuthHandler(manager ports.SessionManager, ttl time.Duration, secure bool) *AuthHandler {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthHandler{manager: manager, ttl: ttl, secure: secure}
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type loginResponse struct {
	User domain.User `json:"user"`
}

// Login authenticates against the upstream and opens a dashboard session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, cookie, sess, err := h.manager.Login(c.Request().Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(cookie, h.ttl))
	return c.JSON(http.StatusOK, loginResponse{User: sess.User})
}

// Logout closes the dashboard session. It always clears the cookie, even when
// no session could be restored.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204  "session closed"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid, _ := c.Get(middleware.CtxSid).(string); sid != "" {
		if err := h.manager.Logout(c.Request().Context(), sid); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
