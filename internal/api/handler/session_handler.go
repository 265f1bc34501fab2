package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// SessionHandler exposes the authenticated caller's own session: the cached
// profile and the pending notification queue.
type SessionHandler struct {
	notifier ports.Notifier
}

func NewSessionHandler(notifier ports.Notifier) *SessionHandler {
	return &SessionHandler{notifier: notifier}
}

type notificationsResponse struct {
	Success []string `json:"success"`
	Error   []string `json:"error"`
}

// Me returns the profile cached at login time.
//
// @Summary      Current user profile
// @Tags         session
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, caller.Session.User)
}

// Notifications drains the caller's pending notifications. Success and error
// messages travel on independent channels; a drained notification is gone.
//
// @Summary      Drain pending notifications
// @Tags         session
// @Produce      json
// @Success      200  {object}  notificationsResponse
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/notifications [get]
func (h *SessionHandler) Notifications(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	pending, err := h.notifier.Notifications(c.Request().Context(), caller.Sid)
	if err != nil {
		return err
	}

	resp := notificationsResponse{Success: []string{}, Error: []string{}}
	for _, n := range pending {
		switch n.Level {
		case domain.NoticeError:
			resp.Error = append(resp.Error, n.Message)
		default:
			resp.Success = append(resp.Success, n.Message)
		}
	}
	return c.JSON(http.StatusOK, resp)
}
