package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore maps opaque tokens to session records in Redis. Only the
// SHA-256 digest of a token ever touches Redis; the plaintext token exists
// solely on the client. The key TTL is the idle timeout and is refreshed on
// every Get.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore with the given idle timeout.
func NewSessionStore(client *redis.Client, idleTTL time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: idleTTL}
}

func (s *SessionStore) Establish(ctx context.Context, session domain.Session) (string, error) {
	token, err := domain.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := s.client.GetEx(ctx, s.key(token), s.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Terminate(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("terminate session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + domain.HashSessionToken(token)
}
