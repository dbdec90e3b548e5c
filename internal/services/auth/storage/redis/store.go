// Package redis implements the session token store over Redis key expiry.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/louisbranch/cyclingtracker/internal/services/auth/storage"
)

const keyPrefix = "cyclingtracker:session:"

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store keeps session tokens as Redis keys with a TTL.
type Store struct {
	client *goredis.Client
}

// New wraps an existing client.
func New(client *goredis.Client) *Store {
	return &Store{client: client}
}

// Open connects to Redis and verifies the connection.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if strings.TrimSpace(opts.Addr) == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	// Deadlines on the caller's context bound every command, Ping included.
	client := goredis.NewClient(&goredis.Options{
		Addr:                  opts.Addr,
		Password:              opts.Password,
		DB:                    opts.DB,
		ContextTimeoutEnabled: true,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return New(client), nil
}

// Close releases the Redis connection pool.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// SetToken stores token -> username with ttl.
func (s *Store) SetToken(ctx context.Context, token string, username string, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("token store is not configured")
	}
	if ttl <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if err := s.client.Set(ctx, keyPrefix+token, username, ttl).Err(); err != nil {
		return fmt.Errorf("set session token: %w", err)
	}
	return nil
}

// GetToken returns the username bound to token.
func (s *Store) GetToken(ctx context.Context, token string) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("token store is not configured")
	}
	username, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, goredis.Nil) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session token: %w", err)
	}
	return username, nil
}

var _ storage.TokenStore = (*Store)(nil)
