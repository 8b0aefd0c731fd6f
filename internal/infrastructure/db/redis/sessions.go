package redis

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

const tokenBytes = 32

// SessionStore keeps session tokens in Redis, mapping each token to the
// employee id it was issued for. Tokens are stored under an HMAC of the raw
// value so a leaked keyspace dump does not yield usable cookies. Expiry is
// owned entirely by Redis via the configured TTL.
type SessionStore struct {
	client *redis.Client
	secret []byte
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, secret string, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, secret: []byte(secret), ttl: ttl}
}

// Create issues a fresh random token bound to employeeID.
func (s *SessionStore) Create(ctx context.Context, employeeID int64) (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	token := hex.EncodeToString(b)

	if err := s.client.Set(ctx, s.key(token), employeeID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to the employee id it was issued for.
func (s *SessionStore) Get(ctx context.Context, token string) (int64, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, fmt.Errorf("load session: %w", err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, domain.ErrSessionNotFound
	}
	return id, nil
}

// Delete revokes a token. Unknown tokens are not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return "session:" + hex.EncodeToString(mac.Sum(nil))
}
