package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/domain"
)

var _ billing.SessionStore = (*RedisStore)(nil)

// RedisStore keeps workflow sessions in Redis as JSON with a TTL. Needed when
// more than one API instance serves the registers; any instance can pick up
// any session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds the store on its own Redis client.
func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client, ttl: ttl}
}

// Ping verifies connectivity; called once at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func sessionKey(id string) string {
	return "workflow:session:" + id
}

// Put stores the session as JSON and refreshes its TTL.
func (s *RedisStore) Put(ctx context.Context, sess *billing.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(sess.ID), payload, s.ttl).Err()
}

// Get returns the session, or ErrSessionNotFound for unknown or expired ids.
func (s *RedisStore) Get(ctx context.Context, id string) (*billing.Session, error) {
	val, err := s.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var sess billing.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
