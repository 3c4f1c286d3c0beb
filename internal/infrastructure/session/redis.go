package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// The token pair lives in a Redis hash under two fixed field names.
const (
	fieldAccess  = "access"
	fieldRefresh = "refresh"
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore keeps session token pairs in Redis with a sliding TTL.
// Key format: session:<sid>
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore wrapping the given Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (domain.TokenPair, error) {
	vals, err := s.client.HGetAll(ctx, s.key(sid)).Result()
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("session get: %w", err)
	}
	if len(vals) == 0 {
		return domain.TokenPair{}, domain.ErrSessionNotFound
	}
	return domain.TokenPair{
		Access:  vals[fieldAccess],
		Refresh: vals[fieldRefresh],
	}, nil
}

func (s *RedisStore) Save(ctx context.Context, sid string, pair domain.TokenPair) error {
	key := s.key(sid)
	if err := s.client.HSet(ctx, key, fieldAccess, pair.Access, fieldRefresh, pair.Refresh).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return s.client.Expire(ctx, key, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, s.key(sid)).Err()
}

func (s *RedisStore) key(sid string) string {
	return "session:" + sid
}
