package services

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"hourlog/internal/core"
	"hourlog/internal/kv"
)

func TestCollectionsRoundTrip(t *testing.T) {
	e1 := core.Entry{ID: "0190c1d2-aaaa-7bbb-8ccc-000000000001", Person: "Alice", Place: "Cafe", Date: "2024-01-02", Hours: 3}
	e1.Refresh()
	e2 := core.Entry{Person: "Bob", Place: "Bar", Date: "2024-03-10", Hours: 1.25}
	e2.Refresh()

	in := Collections{
		People:  []string{"Alice", "Bob"},
		Places:  []string{"Cafe", "Bar"},
		Entries: []core.Entry{e1, e2},
	}

	items, err := in.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	byKey := map[string][]byte{}
	for _, it := range items {
		byKey[it.Key] = it.Value
	}

	out, err := DecodeCollections(byKey[kv.KeyPeople], byKey[kv.KeyPlaces], byKey[kv.KeyEntries])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in=%+v\nout=%+v", in, out)
	}
}

func TestEntryFieldNames(t *testing.T) {
	e := core.Entry{Person: "Alice", Place: "Cafe", Date: "2024-01-02", Hours: 3}
	e.Refresh()
	items, err := Collections{Entries: []core.Entry{e}}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(items[2].Value, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected one entry, got %d", len(raw))
	}
	for _, field := range []string{"person", "place", "date", "hours", "weekKey", "weekLabel"} {
		if _, ok := raw[0][field]; !ok {
			t.Errorf("missing field %q", field)
		}
	}
	if _, ok := raw[0]["id"]; ok {
		t.Errorf("empty id should be omitted")
	}
}

func TestEmptyCollectionsEncodeAsArrays(t *testing.T) {
	items, err := Collections{}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, it := range items {
		if string(it.Value) != "[]" {
			t.Errorf("%s: got %q, want []", it.Key, it.Value)
		}
	}

	c, err := DecodeCollections(nil, nil, nil)
	if err != nil {
		t.Fatalf("decode absent: %v", err)
	}
	if len(c.People) != 0 || len(c.Places) != 0 || len(c.Entries) != 0 {
		t.Fatalf("expected empty collections, got %+v", c)
	}
}

func TestDecodeOriginalLayout(t *testing.T) {
	// Entries written without an id still decode.
	raw := `[{"person":"Alice","place":"Cafe","date":"2024-01-02","hours":3,"weekKey":"W1-2024-01-01","weekLabel":"Week 1 (2024-01-01 → 2024-01-07)"}]`
	c, err := DecodeCollections([]byte(`["Alice"]`), []byte(`["Cafe"]`), []byte(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(c.Entries) != 1 || c.Entries[0].ID != "" || c.Entries[0].Hours != 3 {
		t.Fatalf("unexpected entries: %+v", c.Entries)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeCollections([]byte(`{"not":"a list"}`), nil, nil)
	if err == nil || !strings.Contains(err.Error(), "decode people") {
		t.Fatalf("expected decode people error, got %v", err)
	}
}
