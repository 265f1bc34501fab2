package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/comandero/dashboard-gateway/internal/api/metrics"
	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// SessionManager owns the session lifecycle: login, logout, restore, forced
// teardown, and the transient notification channel. It is the only component
// that writes the session store.
type SessionManager struct {
	auth   ports.AuthAPI
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

func NewSessionManager(auth ports.AuthAPI, store ports.SessionStore, secret string, ttl time.Duration, log zerolog.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		auth:   auth,
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		log:    log,
	}
}

// Login authenticates against the upstream, derives the user profile from the
// login response, and persists the session. Nothing is stored on failure.
func (m *SessionManager) Login(ctx context.Context, email, password string) (string, string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", "", nil, domain.ErrInvalidCredentials
	}

	result, err := m.auth.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidCredentials) {
			return "", "", nil, domain.ErrInvalidCredentials
		}
		return "", "", nil, fmt.Errorf("login: %w", err)
	}

	name := result.Nombre
	if name == "" {
		name = result.Username
	}
	sess := &domain.Session{
		Token: result.AccessToken,
		User: domain.User{
			ID:    strconv.FormatInt(result.ID, 10),
			Name:  name,
			Email: email,
			Role:  domain.ResolveRole(result.Roles),
		},
	}

	sid := newSessionID()
	if err := m.store.Save(ctx, sid, sess); err != nil {
		return "", "", nil, fmt.Errorf("login: persist session: %w", err)
	}

	cookie, err := m.issueCookie(sid)
	if err != nil {
		// Roll back: a session the browser cannot reference is garbage.
		_ = m.store.Delete(ctx, sid)
		return "", "", nil, fmt.Errorf("login: issue cookie: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	m.Notify(ctx, sid, domain.NoticeSuccess, "Inicio de sesión exitoso")
	m.log.Info().Str("user_id", sess.User.ID).Str("role", string(sess.User.Role)).Msg("session opened")

	return sid, cookie, sess, nil
}

// Logout clears the persisted session. The upstream logout call is best
// effort; the local clear runs regardless and never fails the operation.
func (m *SessionManager) Logout(ctx context.Context, sid string) error {
	if sess, err := m.store.Find(ctx, sid); err == nil {
		if err := m.auth.Logout(ctx, sess.Token); err != nil {
			m.log.Warn().Err(err).Msg("upstream logout failed, clearing local session anyway")
		}
	}

	m.Notify(ctx, sid, domain.NoticeSuccess, "Sesión cerrada")
	if err := m.store.Delete(ctx, sid); err != nil {
		// Surfacing a delete error would leave the browser believing it is
		// still logged in; log and report success.
		m.log.Error().Err(err).Str("sid", sid).Msg("session delete failed")
	}

	m.log.Info().Str("sid", sid).Msg("session closed")
	return nil
}

// Restore resolves a cookie value to a session. The decision is local only:
// the upstream token is not revalidated here, so a server-invalidated token
// is caught on the first proxied call instead.
func (m *SessionManager) Restore(ctx context.Context, cookie string) (*domain.Session, string, domain.SessionState) {
	if cookie == "" {
		metrics.SessionRestoresTotal.WithLabelValues("anonymous").Inc()
		return nil, "", domain.StateAnonymous
	}

	sid, err := m.parseCookie(cookie)
	if err != nil {
		m.log.Debug().Err(err).Msg("session cookie rejected")
		metrics.SessionRestoresTotal.WithLabelValues("anonymous").Inc()
		return nil, "", domain.StateAnonymous
	}

	sess, err := m.store.Find(ctx, sid)
	if err != nil {
		result := "anonymous"
		if errors.Is(err, domain.ErrSessionCorrupt) {
			result = "corrupt"
			m.log.Warn().Str("sid", sid).Msg("corrupt session record purged")
		}
		metrics.SessionRestoresTotal.WithLabelValues(result).Inc()
		return nil, "", domain.StateAnonymous
	}

	metrics.SessionRestoresTotal.WithLabelValues("authenticated").Inc()
	return sess, sid, domain.StateAuthenticated
}

// Teardown force-clears a session after an upstream endpoint reported it
// unauthorized.
func (m *SessionManager) Teardown(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := m.store.Delete(ctx, sid); err != nil {
		m.log.Error().Err(err).Str("sid", sid).Msg("session teardown delete failed")
	}
	metrics.SessionTeardownsTotal.Inc()
	m.log.Info().Str("sid", sid).Msg("session torn down after upstream 401")
}

// Notify schedules a transient notification. Best effort: a failed push is
// logged, never surfaced, so notification plumbing cannot break an action
// that already succeeded.
func (m *SessionManager) Notify(ctx context.Context, sid, level, message string) {
	if sid == "" {
		return
	}
	if err := m.store.PushNotification(ctx, sid, domain.Notification{Level: level, Message: message}); err != nil {
		m.log.Warn().Err(err).Str("sid", sid).Msg("notification push failed")
	}
}

// Notifications drains and returns the pending notifications for a session.
func (m *SessionManager) Notifications(ctx context.Context, sid string) ([]domain.Notification, error) {
	return m.store.PopNotifications(ctx, sid)
}

func (m *SessionManager) issueCookie(sid string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *SessionManager) parseCookie(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("parse session cookie: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("parse session cookie: empty subject")
	}
	return claims.Subject, nil
}

// newSessionID returns a random 128-bit identifier in hex.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
