package ports

import (
	"context"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
)

// SessionStore persists the two halves of a session — the upstream bearer
// token and the cached user profile — under a session ID. Implementations
// must write both entries together and clear both together: a record with
// only one half, or an unparsable user payload, is corrupt and must be purged
// on read.
//
// The store is mutated only by the session manager (single-writer
// discipline); no other component may write it directly.
type SessionStore interface {
	Save(ctx context.Context, sid string, session *domain.Session) error
	// Find returns the session for sid, or domain.ErrSessionNotFound when
	// nothing is stored or the stored data is corrupt (in which case the
	// corrupt entries are removed before returning).
	Find(ctx context.Context, sid string) (*domain.Session, error)
	Delete(ctx context.Context, sid string) error

	// PushNotification appends a transient notification to the session's
	// queue. Success and error notifications are independent channels.
	PushNotification(ctx context.Context, sid string, n domain.Notification) error
	// PopNotifications drains and returns all pending notifications.
	PopNotifications(ctx context.Context, sid string) ([]domain.Notification, error)
}

// SessionManager is the single source of truth for "who is logged in". It
// owns the session lifecycle and is the only writer of the session store.
type SessionManager interface {
	// Login authenticates against the upstream, persists the session, and
	// returns the session ID plus the signed cookie value the browser holds.
	// On failure nothing is stored and domain.ErrInvalidCredentials is
	// returned.
	Login(ctx context.Context, email, password string) (sid, cookie string, sess *domain.Session, err error)
	// Logout clears the persisted session. The local clear always succeeds;
	// an upstream logout failure is logged and swallowed.
	Logout(ctx context.Context, sid string) error
	// Restore resolves a cookie value to a session. It returns
	// StateAuthenticated with the session, or StateAnonymous with nil when
	// the cookie is absent, invalid, or the stored record is missing or
	// corrupt.
	Restore(ctx context.Context, cookie string) (*domain.Session, string, domain.SessionState)
	// Teardown force-clears a session after the upstream reported it
	// unauthorized.
	Teardown(ctx context.Context, sid string)

	Notifier
}

// Notifier schedules transient, dismissible notifications for a session.
type Notifier interface {
	Notify(ctx context.Context, sid, level, message string)
	Notifications(ctx context.Context, sid string) ([]domain.Notification, error)
}
