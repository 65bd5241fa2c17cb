// Package redisstore provides a Redis-backed implementation of domain.Storage.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.Storage.
var _ domain.Storage = (*Store)(nil)

const defaultTimeout = 2 * time.Second

// Store implements domain.Storage using Redis string keys.
type Store struct {
	client  *backend.Client
	prefix  string
	timeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTimeout bounds every Redis round trip.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.timeout = d
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client:  client,
		prefix:  "todo:",
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(key string) string {
	return s.prefix + key
}

func (s *Store) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Available pings the server.
func (s *Store) Available() bool {
	ctx, cancel := s.opContext()
	defer cancel()
	return s.client.Ping(ctx).Err() == nil
}

// Read returns the value at key.
func (s *Store) Read(key string) (string, bool, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read from redis: %w", err)
	}
	return val, true, nil
}

// Write stores value at key without expiration.
func (s *Store) Write(key, value string) error {
	ctx, cancel := s.opContext()
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write to redis: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
