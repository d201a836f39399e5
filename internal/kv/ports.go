// Package kv defines the key-value port the entry store persists through.
package kv

import "context"

// Fixed keys of the three persisted collections.
const (
	KeyPeople  = "people"
	KeyPlaces  = "places"
	KeyEntries = "entries"
)

// Keys lists every collection key in write order.
var Keys = []string{KeyPeople, KeyPlaces, KeyEntries}

type (
	// Store reads and writes whole serialized collections.
	Store interface {
		// Get returns the value stored under key. ok is false when the key is absent.
		Get(ctx context.Context, key string) (value []byte, ok bool, err error)
		// Set replaces the value stored under key.
		Set(ctx context.Context, key string, value []byte) error
	}

	// BatchSetter is implemented by stores that can write several keys atomically.
	BatchSetter interface {
		SetAll(ctx context.Context, items []Item) error
	}

	// Item is one key and its serialized value.
	Item struct {
		Key   string
		Value []byte
	}
)

// SetAll writes items through s, atomically when s supports it.
func SetAll(ctx context.Context, s Store, items []Item) error {
	if b, ok := s.(BatchSetter); ok {
		return b.SetAll(ctx, items)
	}
	for _, it := range items {
		if err := s.Set(ctx, it.Key, it.Value); err != nil {
			return err
		}
	}
	return nil
}
