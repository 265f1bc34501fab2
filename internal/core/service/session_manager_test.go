package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type memSessionStore struct {
	sessions map[string]*domain.Session
	notices  map[string][]domain.Notification
	corrupt  map[string]bool // sid -> stored record is unparsable
	deleted  []string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{
		sessions: make(map[string]*domain.Session),
		notices:  make(map[string][]domain.Notification),
		corrupt:  make(map[string]bool),
	}
}

func (s *memSessionStore) Save(_ context.Context, sid string, sess *domain.Session) error {
	clone := *sess
	s.sessions[sid] = &clone
	return nil
}

func (s *memSessionStore) Find(_ context.Context, sid string) (*domain.Session, error) {
	if s.corrupt[sid] {
		// Mirrors the Redis store: corrupt entries are purged on read.
		delete(s.sessions, sid)
		delete(s.corrupt, sid)
		s.deleted = append(s.deleted, sid)
		return nil, domain.ErrSessionCorrupt
	}
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *memSessionStore) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	s.deleted = append(s.deleted, sid)
	return nil
}

func (s *memSessionStore) PushNotification(_ context.Context, sid string, n domain.Notification) error {
	s.notices[sid] = append(s.notices[sid], n)
	return nil
}

func (s *memSessionStore) PopNotifications(_ context.Context, sid string) ([]domain.Notification, error) {
	pending := s.notices[sid]
	delete(s.notices, sid)
	return pending, nil
}

type stubAuthAPI struct {
	loginFn    func(ctx context.Context, usernameOrEmail, password string) (*ports.LoginResult, error)
	logoutErr  error
	loginCalls int
	logoutTok  string
}

func (a *stubAuthAPI) Login(ctx context.Context, usernameOrEmail, password string) (*ports.LoginResult, error) {
	a.loginCalls++
	return a.loginFn(ctx, usernameOrEmail, password)
}

func (a *stubAuthAPI) Logout(_ context.Context, token string) error {
	a.logoutTok = token
	return a.logoutErr
}

func (a *stubAuthAPI) Me(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func adminLoginResult() *ports.LoginResult {
	return &ports.LoginResult{
		AccessToken: "upstream-token",
		ID:          7,
		Nombre:      "Ana",
		Roles:       []domain.RoleClaim{{Name: "ROLE_ADMIN"}, {Name: "ADMIN"}},
	}
}

func newTestManager(auth *stubAuthAPI, store *memSessionStore) *SessionManager {
	return NewSessionManager(auth, store, "test-secret", time.Hour, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSessionManager_LoginThenLogoutClearsSession(t *testing.T) {
	store := newMemSessionStore()
	auth := &stubAuthAPI{loginFn: func(_ context.Context, email, _ string) (*ports.LoginResult, error) {
		if email != "ana@example.com" {
			t.Fatalf("unexpected email: %s", email)
		}
		return adminLoginResult(), nil
	}}
	m := newTestManager(auth, store)

	sid, cookie, sess, err := m.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if cookie == "" || sid == "" {
		t.Fatalf("expected sid and cookie, got %q / %q", sid, cookie)
	}
	if sess.Token != "upstream-token" || sess.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.User.Name != "Ana" || sess.User.Email != "ana@example.com" || sess.User.ID != "7" {
		t.Fatalf("unexpected user profile: %+v", sess.User)
	}
	if _, ok := store.sessions[sid]; !ok {
		t.Fatalf("session not persisted")
	}

	if err := m.Logout(context.Background(), sid); err != nil {
		t.Fatalf("logout error: %v", err)
	}
	if _, ok := store.sessions[sid]; ok {
		t.Fatalf("session still stored after logout")
	}
	if auth.logoutTok != "upstream-token" {
		t.Fatalf("upstream logout not called with session token")
	}
}

func TestSessionManager_LogoutSucceedsWhenUpstreamFails(t *testing.T) {
	store := newMemSessionStore()
	auth := &stubAuthAPI{
		loginFn:   func(context.Context, string, string) (*ports.LoginResult, error) { return adminLoginResult(), nil },
		logoutErr: errors.New("upstream down"),
	}
	m := newTestManager(auth, store)

	sid, _, _, err := m.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	if err := m.Logout(context.Background(), sid); err != nil {
		t.Fatalf("logout must not fail on upstream error, got: %v", err)
	}
	if _, ok := store.sessions[sid]; ok {
		t.Fatalf("local session must be cleared despite upstream failure")
	}
}

func TestSessionManager_LoginInvalidCredentials(t *testing.T) {
	store := newMemSessionStore()
	auth := &stubAuthAPI{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return nil, domain.ErrUnauthorized
	}}
	m := newTestManager(auth, store)

	_, _, _, err := m.Login(context.Background(), "ana@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("nothing must be stored on failed login")
	}
}

func TestSessionManager_LoginEmptyFieldsSkipsUpstream(t *testing.T) {
	auth := &stubAuthAPI{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return adminLoginResult(), nil
	}}
	m := newTestManager(auth, newMemSessionStore())

	if _, _, _, err := m.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, _, err := m.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
	if auth.loginCalls != 0 {
		t.Fatalf("no upstream call expected, got %d", auth.loginCalls)
	}
}

func TestSessionManager_RestoreValidSession(t *testing.T) {
	store := newMemSessionStore()
	auth := &stubAuthAPI{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return adminLoginResult(), nil
	}}
	m := newTestManager(auth, store)

	sid, cookie, _, err := m.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	sess, restoredSid, state := m.Restore(context.Background(), cookie)
	if state != domain.StateAuthenticated {
		t.Fatalf("expected authenticated, got %s", state)
	}
	if restoredSid != sid {
		t.Fatalf("sid mismatch: %s vs %s", restoredSid, sid)
	}
	if sess == nil || sess.User.Email != "ana@example.com" {
		t.Fatalf("unexpected restored session: %+v", sess)
	}
}

func TestSessionManager_RestoreMissingCookie(t *testing.T) {
	m := newTestManager(&stubAuthAPI{}, newMemSessionStore())

	sess, sid, state := m.Restore(context.Background(), "")
	if state != domain.StateAnonymous || sess != nil || sid != "" {
		t.Fatalf("expected anonymous with nil session, got state=%s sess=%v", state, sess)
	}
}

func TestSessionManager_RestoreTamperedCookie(t *testing.T) {
	m := newTestManager(&stubAuthAPI{}, newMemSessionStore())

	_, _, state := m.Restore(context.Background(), "not-a-valid-jwt")
	if state != domain.StateAnonymous {
		t.Fatalf("expected anonymous for tampered cookie, got %s", state)
	}
}

func TestSessionManager_RestoreCorruptRecordPurges(t *testing.T) {
	store := newMemSessionStore()
	auth := &stubAuthAPI{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return adminLoginResult(), nil
	}}
	m := newTestManager(auth, store)

	sid, cookie, _, err := m.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	store.corrupt[sid] = true

	sess, _, state := m.Restore(context.Background(), cookie)
	if state != domain.StateAnonymous || sess != nil {
		t.Fatalf("expected anonymous for corrupt record, got state=%s", state)
	}
	if _, ok := store.sessions[sid]; ok {
		t.Fatalf("corrupt record must be purged")
	}
}

func TestSessionManager_TeardownClearsSession(t *testing.T) {
	store := newMemSessionStore()
	auth := &stubAuthAPI{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return adminLoginResult(), nil
	}}
	m := newTestManager(auth, store)

	sid, _, _, err := m.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	m.Teardown(context.Background(), sid)
	if _, ok := store.sessions[sid]; ok {
		t.Fatalf("session must be cleared by teardown")
	}
}

func TestSessionManager_NotificationsDrainOnce(t *testing.T) {
	store := newMemSessionStore()
	m := newTestManager(&stubAuthAPI{}, store)

	m.Notify(context.Background(), "s1", domain.NoticeSuccess, "hecho")
	m.Notify(context.Background(), "s1", domain.NoticeError, "fallo")

	pending, err := m.Notifications(context.Background(), "s1")
	if err != nil {
		t.Fatalf("notifications error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(pending))
	}
	if pending[0].Level != domain.NoticeSuccess || pending[1].Level != domain.NoticeError {
		t.Fatalf("channels not preserved: %+v", pending)
	}

	again, err := m.Notifications(context.Background(), "s1")
	if err != nil {
		t.Fatalf("notifications error: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("notifications must drain on read, got %d", len(again))
	}
}
