package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix is the prefix for all curator keys in redis
	DefaultKeyPrefix = "curator:"

	// DefaultDialTimeout is the timeout for establishing the redis connection
	DefaultDialTimeout = 5 * time.Second
)

// RedisOptions configures the redis-backed store.
type RedisOptions struct {
	Addr      string // redis address (e.g. "localhost:6379")
	Password  string // optional password
	DB        int    // redis database number
	KeyPrefix string // prefix for all keys (default "curator:")
}

// RedisStore is a Store backed by a redis server. Each reserved key maps to
// one redis string value holding the full collection snapshot.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: DefaultDialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
	}, nil
}

// Get returns the value stored under key, or found=false on a redis miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return data, true, nil
}

// Set replaces the value stored under key. Values never expire.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Ping verifies the redis connection is alive.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
