// Package redis stores the collections in a Redis server, one string key each.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"hourlog/internal/kv"
)

// Store implements kv.Store on top of a Redis client.
type Store struct {
	client *goredis.Client
	prefix string
}

// New connects to the Redis server at url and verifies the connection.
func New(ctx context.Context, url, prefix string) (*Store, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: client, prefix: prefix}, nil
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// Get implements kv.Store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements kv.Store.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// SetAll implements kv.BatchSetter with a MULTI/EXEC pipeline.
func (s *Store) SetAll(ctx context.Context, items []kv.Item) error {
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, it := range items {
			pipe.Set(ctx, s.key(it.Key), it.Value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set collections: %w", err)
	}
	slog.DebugContext(ctx, "Collections written to Redis", "keys", len(items), "prefix", s.prefix)
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
