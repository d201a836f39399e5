package memory

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"hourlog/internal/kv"
)

// Store keeps values in process memory.
type Store struct {
	mu    sync.Mutex
	items map[string][]byte
}

func New() *Store {
	return &Store{items: make(map[string][]byte)}
}

// NewFromFiles seeds the people and places collections from
// seed_people.txt and seed_places.txt in base, when present.
func NewFromFiles(base string) *Store {
	s := New()
	seed := func(key, file string) {
		names := readLines(filepath.Join(base, file))
		if len(names) == 0 {
			return
		}
		b, err := json.Marshal(names)
		if err != nil {
			return
		}
		s.items[key] = b
	}
	seed(kv.KeyPeople, "seed_people.txt")
	seed(kv.KeyPlaces, "seed_places.txt")
	return s
}

// Get implements kv.Store.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set implements kv.Store.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), value...)
	return nil
}

// SetAll implements kv.BatchSetter.
func (s *Store) SetAll(_ context.Context, items []kv.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.items[it.Key] = append([]byte(nil), it.Value...)
	}
	return nil
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return dedupe(out)
}

// dedupe drops repeated names, keeping the first occurrence.
func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
