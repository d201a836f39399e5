package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestEntryInputParse(t *testing.T) {
	e, err := EntryInput{Person: " Alice ", Place: "Cafe", Date: "2024-01-02", Hours: "3"}.Parse()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Person != "Alice" || e.Place != "Cafe" || e.Date != "2024-01-02" || e.Hours != 3 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.WeekKey != "W1-2024-01-01" {
		t.Fatalf("unexpected week key %q", e.WeekKey)
	}
	if e.WeekLabel != "Week 1 (2024-01-01 → 2024-01-07)" {
		t.Fatalf("unexpected week label %q", e.WeekLabel)
	}
	if e.ID != "" {
		t.Fatalf("expected empty id, got %q", e.ID)
	}
}

func TestEntryInputParseRejects(t *testing.T) {
	cases := []struct {
		in   EntryInput
		want error
	}{
		{EntryInput{Person: "", Place: "Cafe", Date: "2024-01-02", Hours: "3"}, ErrEmptyPerson},
		{EntryInput{Person: "  ", Place: "Cafe", Date: "2024-01-02", Hours: "3"}, ErrEmptyPerson},
		{EntryInput{Person: "Alice", Place: "", Date: "2024-01-02", Hours: "3"}, ErrEmptyPlace},
		{EntryInput{Person: "Alice", Place: "Cafe", Date: "", Hours: "3"}, ErrEmptyDate},
		{EntryInput{Person: "Alice", Place: "Cafe", Date: "02/01/2024", Hours: "3"}, ErrInvalidDate},
		{EntryInput{Person: "Alice", Place: "Cafe", Date: "2024-02-30", Hours: "3"}, ErrInvalidDate},
		{EntryInput{Person: "Alice", Place: "Cafe", Date: "2024-01-02", Hours: ""}, ErrInvalidHours},
		{EntryInput{Person: "Alice", Place: "Cafe", Date: "2024-01-02", Hours: "0"}, ErrInvalidHours},
		{EntryInput{Person: "Alice", Place: "Cafe", Date: "2024-01-02", Hours: "-2"}, ErrInvalidHours},
		{EntryInput{Person: "Alice", Place: "Cafe", Date: "2024-01-02", Hours: "NaN"}, ErrInvalidHours},
		{EntryInput{Person: "Alice", Place: "Cafe", Date: "2024-01-02", Hours: "Inf"}, ErrInvalidHours},
	}
	for i, tc := range cases {
		_, err := tc.in.Parse()
		if !errors.Is(err, tc.want) {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, err)
		}
		if !IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestEntryValidate(t *testing.T) {
	good := Entry{Person: "A", Place: "P", Date: "2024-01-02", Hours: 1.5}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []Entry{
		{Person: "", Place: "P", Date: "2024-01-02", Hours: 1},
		{Person: "A", Place: "", Date: "2024-01-02", Hours: 1},
		{Person: "A", Place: "P", Date: "nope", Hours: 1},
		{Person: "A", Place: "P", Date: "2024-01-02", Hours: 0},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestRefreshRecomputesWeek(t *testing.T) {
	e := Entry{Date: "2024-01-08", WeekKey: "stale", WeekLabel: "stale"}
	e.Refresh()
	if e.WeekKey != "W2-2024-01-08" {
		t.Fatalf("unexpected key %q", e.WeekKey)
	}
	if e.WeekLabel != "Week 2 (2024-01-08 → 2024-01-14)" {
		t.Fatalf("unexpected label %q", e.WeekLabel)
	}
}

func TestNormalizeName(t *testing.T) {
	if got, err := NormalizeName("  Bob "); err != nil || got != "Bob" {
		t.Fatalf("expected Bob, got %q (err=%v)", got, err)
	}
	if _, err := NormalizeName("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(fmt.Errorf("person %q: %w", "Bob", ErrDuplicateName)) {
		t.Fatal("wrapped duplicate should be a validation error")
	}
	if IsValidation(errors.New("disk full")) {
		t.Fatal("arbitrary error should not be a validation error")
	}
	if IsValidation(nil) {
		t.Fatal("nil should not be a validation error")
	}
}
