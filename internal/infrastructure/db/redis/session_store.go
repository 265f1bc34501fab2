package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore persists sessions in Redis as two entries per session ID —
// the opaque upstream token and the serialized user profile — written
// together in one pipeline and cleared together. A record with only one half
// present, or an unparsable user payload, is purged on read and reported as
// corrupt.
//
// Key formats:
//
//	session:<sid>:token
//	session:<sid>:user
//	session:<sid>:notices
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Save(ctx context.Context, sid string, sess *domain.Session) error {
	profile, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("session save: encode user: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.tokenKey(sid), sess.Token, s.ttl)
	pipe.Set(ctx, s.userKey(sid), profile, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Find(ctx context.Context, sid string) (*domain.Session, error) {
	values, err := s.client.MGet(ctx, s.tokenKey(sid), s.userKey(sid)).Result()
	if err != nil {
		return nil, fmt.Errorf("session find: %w", err)
	}

	token, tokenOK := values[0].(string)
	profile, userOK := values[1].(string)

	if !tokenOK && !userOK {
		return nil, domain.ErrSessionNotFound
	}
	// Half a record violates the token+user invariant; purge it.
	if !tokenOK || !userOK {
		s.purge(ctx, sid)
		return nil, domain.ErrSessionCorrupt
	}

	var user domain.User
	if err := json.Unmarshal([]byte(profile), &user); err != nil {
		s.purge(ctx, sid)
		return nil, domain.ErrSessionCorrupt
	}

	return &domain.Session{Token: token, User: user}, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.tokenKey(sid), s.userKey(sid), s.noticesKey(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) PushNotification(ctx context.Context, sid string, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notification push: encode: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, s.noticesKey(sid), payload)
	pipe.Expire(ctx, s.noticesKey(sid), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("notification push: %w", err)
	}
	return nil
}

// PopNotifications drains the pending notification queue atomically.
func (s *SessionStore) PopNotifications(ctx context.Context, sid string) ([]domain.Notification, error) {
	pipe := s.client.TxPipeline()
	items := pipe.LRange(ctx, s.noticesKey(sid), 0, -1)
	pipe.Del(ctx, s.noticesKey(sid))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("notification pop: %w", err)
	}

	raw, err := items.Result()
	if err != nil {
		return nil, fmt.Errorf("notification pop: %w", err)
	}

	notifications := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			// Skip unreadable entries rather than blocking the queue.
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (s *SessionStore) purge(ctx context.Context, sid string) {
	_ = s.client.Del(ctx, s.tokenKey(sid), s.userKey(sid), s.noticesKey(sid)).Err()
}

func (s *SessionStore) tokenKey(sid string) string {
	return fmt.Sprintf("session:%s:token", sid)
}

func (s *SessionStore) userKey(sid string) string {
	return fmt.Sprintf("session:%s:user", sid)
}

func (s *SessionStore) noticesKey(sid string) string {
	return fmt.Sprintf("session:%s:notices", sid)
}
