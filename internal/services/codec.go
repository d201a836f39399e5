package services

import (
	"encoding/json"
	"fmt"

	"hourlog/internal/core"
	"hourlog/internal/kv"
)

// Collections is a value snapshot of everything the entry store persists.
type Collections struct {
	People  []string     `json:"people"`
	Places  []string     `json:"places"`
	Entries []core.Entry `json:"entries"`
}

// Encode serializes each collection under its fixed key.
func (c Collections) Encode() ([]kv.Item, error) {
	people, err := marshalList(c.People)
	if err != nil {
		return nil, fmt.Errorf("encode people: %w", err)
	}
	places, err := marshalList(c.Places)
	if err != nil {
		return nil, fmt.Errorf("encode places: %w", err)
	}
	entries, err := marshalList(c.Entries)
	if err != nil {
		return nil, fmt.Errorf("encode entries: %w", err)
	}
	return []kv.Item{
		{Key: kv.KeyPeople, Value: people},
		{Key: kv.KeyPlaces, Value: places},
		{Key: kv.KeyEntries, Value: entries},
	}, nil
}

// DecodeCollections is the inverse of Encode. Missing or empty values decode
// to empty collections.
func DecodeCollections(people, places, entries []byte) (Collections, error) {
	var c Collections
	if err := unmarshalList(people, &c.People); err != nil {
		return Collections{}, fmt.Errorf("decode people: %w", err)
	}
	if err := unmarshalList(places, &c.Places); err != nil {
		return Collections{}, fmt.Errorf("decode places: %w", err)
	}
	if err := unmarshalList(entries, &c.Entries); err != nil {
		return Collections{}, fmt.Errorf("decode entries: %w", err)
	}
	return c, nil
}

func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func unmarshalList[T any](raw []byte, out *[]T) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
