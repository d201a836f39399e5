package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"hourlog/internal/kv"
)

// Integration test: requires a reachable Redis server in REDIS_URL.
func TestRedisStoreIntegration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set, skipping Redis integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prefix := "hourlog-test:" + time.Now().Format("150405.000000") + ":"
	s, err := New(ctx, url, prefix)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() {
		for _, k := range kv.Keys {
			s.client.Del(ctx, s.key(k))
		}
		s.Close()
	}()

	if _, ok, err := s.Get(ctx, kv.KeyEntries); ok || err != nil {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}

	err = kv.SetAll(ctx, s, []kv.Item{
		{Key: kv.KeyPeople, Value: []byte(`["Alice"]`)},
		{Key: kv.KeyPlaces, Value: []byte(`["Cafe"]`)},
		{Key: kv.KeyEntries, Value: []byte(`[]`)},
	})
	if err != nil {
		t.Fatalf("set all: %v", err)
	}

	got, ok, err := s.Get(ctx, kv.KeyPlaces)
	if err != nil || !ok || string(got) != `["Cafe"]` {
		t.Fatalf("unexpected get: %q ok=%v err=%v", got, ok, err)
	}
}

func TestNewRejectsBadURL(t *testing.T) {
	if _, err := New(context.Background(), "not a url", "x:"); err == nil {
		t.Fatal("expected error for malformed url")
	}
}
