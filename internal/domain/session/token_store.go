// internal/domain/session/token_store.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore persists the opaque bearer token issued by the commerce API,
// keyed by browser session ID. An absent token is the sole signal that a
// session is unauthenticated at hydration time.
type TokenStore interface {
	// Get returns the persisted token, or "" when none exists
	Get(ctx context.Context, sessionID string) (string, error)
	Save(ctx context.Context, sessionID, token string) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisTokenStore is the Redis-backed token store used in production
type RedisTokenStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisTokenStore creates a Redis-backed token store. Tokens expire with
// the browser session TTL; the commerce API enforces its own token expiry
// independently.
func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
		prefix: "session:token:",
		ttl:    ttl,
	}
}

func (r *RedisTokenStore) key(sessionID string) string {
	return r.prefix + sessionID
}

// Get returns the persisted token for the session, or "" when absent
func (r *RedisTokenStore) Get(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session token: %w", err)
	}
	return val, nil
}

// Save persists the token for the session
func (r *RedisTokenStore) Save(ctx context.Context, sessionID, token string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required to persist token")
	}
	if err := r.client.Set(ctx, r.key(sessionID), token, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	return nil
}

// Delete discards the persisted token for the session
func (r *RedisTokenStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session token: %w", err)
	}
	return nil
}
