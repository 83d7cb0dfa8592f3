// Package redis provides a session store backed by one Redis hash per session.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "visadesk:web:session:"

	// DefaultTTL bounds how long an idle session survives.
	DefaultTTL = 7 * 24 * time.Hour
)

// Config wires a Store.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Store keeps session values in Redis hashes with a sliding TTL.
type Store struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// Open connects to Redis and verifies it answers a PING.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(client, cfg.TTL), nil
}

// New wraps an existing client. A non-positive ttl uses DefaultTTL.
func New(client goredis.UniversalClient, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Close releases the Redis connection pool.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, sessionKey(sessionID), key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get session value: %w", err)
	}
	return value, true, nil
}

// Set writes key and refreshes the session TTL atomically.
func (s *Store) Set(ctx context.Context, sessionID, key, value string) error {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(key) == "" {
		return fmt.Errorf("session id and key are required")
	}
	redisKey := sessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, redisKey, key, value)
		pipe.Expire(ctx, redisKey, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set session value: %w", err)
	}
	return nil
}

// Delete removes the given keys. Redis drops the hash once it is empty.
func (s *Store) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, sessionKey(sessionID), keys...).Err(); err != nil {
		return fmt.Errorf("delete session value: %w", err)
	}
	return nil
}
