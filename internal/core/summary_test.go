package core

import (
	"testing"
	"time"
)

func entry(t *testing.T, person, place, date string, hours float64) Entry {
	t.Helper()
	e := Entry{Person: person, Place: place, Date: date, Hours: hours}
	if err := e.Validate(); err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}
	e.Refresh()
	return e
}

func TestComputeWeeklyTotalsSums(t *testing.T) {
	entries := []Entry{
		entry(t, "Alice", "Cafe", "2024-01-02", 3),
		entry(t, "Alice", "Cafe", "2024-01-03", 2),
	}
	totals := ComputeWeeklyTotals(entries)
	if totals.Len() != 1 {
		t.Fatalf("expected 1 group, got %d", totals.Len())
	}
	got, ok := totals.Get(TotalKey{WeekKey: "W1-2024-01-01", Person: "Alice", Place: "Cafe"})
	if !ok {
		t.Fatal("missing group")
	}
	if got.Hours != 5 {
		t.Fatalf("expected 5 hours, got %v", got.Hours)
	}
	if got.WeekLabel != "Week 1 (2024-01-01 → 2024-01-07)" {
		t.Fatalf("unexpected label %q", got.WeekLabel)
	}
}

func TestComputeWeeklyTotalsSeparatesPersonAndPlace(t *testing.T) {
	entries := []Entry{
		entry(t, "Alice", "Cafe", "2024-01-02", 1),
		entry(t, "Bob", "Cafe", "2024-01-02", 2),
		entry(t, "Alice", "Bar", "2024-01-02", 3),
		entry(t, "Alice", "Cafe", "2024-01-09", 4),
		entry(t, "Bob", "Cafe", "2024-01-05", 5),
	}
	all := ComputeWeeklyTotals(entries).All()
	want := []WeeklyTotal{
		{TotalKey: TotalKey{"W1-2024-01-01", "Alice", "Cafe"}, Hours: 1},
		{TotalKey: TotalKey{"W1-2024-01-01", "Bob", "Cafe"}, Hours: 7},
		{TotalKey: TotalKey{"W1-2024-01-01", "Alice", "Bar"}, Hours: 3},
		{TotalKey: TotalKey{"W2-2024-01-08", "Alice", "Cafe"}, Hours: 4},
	}
	if len(all) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(all))
	}
	for i := range want {
		if all[i].TotalKey != want[i].TotalKey || all[i].Hours != want[i].Hours {
			t.Fatalf("group %d: got %+v, want %+v", i, all[i], want[i])
		}
	}
}

func TestComputeWeeklyTotalsOrderIndependent(t *testing.T) {
	entries := []Entry{
		entry(t, "Alice", "Cafe", "2024-01-02", 1.5),
		entry(t, "Bob", "Cafe", "2024-01-02", 2),
		entry(t, "Alice", "Cafe", "2024-01-04", 0.5),
		entry(t, "Alice", "Bar", "2024-03-10", 3),
		entry(t, "Bob", "Cafe", "2024-01-07", 4),
	}
	reversed := make([]Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	rotated := append(append([]Entry(nil), entries[2:]...), entries[:2]...)

	base := ComputeWeeklyTotals(entries)
	for _, perm := range [][]Entry{reversed, rotated} {
		other := ComputeWeeklyTotals(perm)
		if other.Len() != base.Len() {
			t.Fatalf("group count differs: %d vs %d", other.Len(), base.Len())
		}
		for _, w := range base.All() {
			o, ok := other.Get(w.TotalKey)
			if !ok || o.Hours != w.Hours {
				t.Fatalf("total for %+v differs: %v vs %v", w.TotalKey, o.Hours, w.Hours)
			}
		}
	}
}

func TestComputeWeeklyTotalsIdempotent(t *testing.T) {
	entries := []Entry{
		entry(t, "Alice", "Cafe", "2024-01-02", 1),
		entry(t, "Bob", "Bar", "2024-02-02", 2),
	}
	a := ComputeWeeklyTotals(entries).All()
	b := ComputeWeeklyTotals(entries).All()
	if len(a) != len(b) {
		t.Fatalf("length differs")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("item %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestComputeBusiestWeek(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if _, ok := ComputeBusiestWeek(ComputeWeeklyTotals(nil)); ok {
			t.Fatal("expected no busiest week")
		}
	})

	t.Run("maximum wins", func(t *testing.T) {
		entries := []Entry{
			entry(t, "Alice", "Cafe", "2024-01-02", 2),
			entry(t, "Bob", "Bar", "2024-01-09", 6),
			entry(t, "Alice", "Cafe", "2024-01-03", 3),
		}
		got, ok := ComputeBusiestWeek(ComputeWeeklyTotals(entries))
		if !ok || got.Person != "Bob" || got.Hours != 6 {
			t.Fatalf("unexpected busiest: %+v", got)
		}
	})

	t.Run("tie goes to first occurrence", func(t *testing.T) {
		entries := []Entry{
			entry(t, "Bob", "Bar", "2024-01-09", 2),
			entry(t, "Alice", "Cafe", "2024-01-02", 5),
			entry(t, "Bob", "Bar", "2024-01-10", 3),
		}
		got, ok := ComputeBusiestWeek(ComputeWeeklyTotals(entries))
		if !ok {
			t.Fatal("expected a busiest week")
		}
		if got.Person != "Bob" || got.Hours != 5 {
			t.Fatalf("expected Bob's group (first seen), got %+v", got)
		}
	})
}

func TestComputeGrandAndCurrentWeekTotal(t *testing.T) {
	entries := []Entry{
		entry(t, "Alice", "Cafe", "2024-01-02", 3),
		entry(t, "Bob", "Bar", "2024-01-07", 2.5),
		entry(t, "Alice", "Cafe", "2024-01-08", 4),
	}
	if got := ComputeGrandTotal(entries); got != 9.5 {
		t.Fatalf("grand total = %v, want 9.5", got)
	}
	today := time.Date(2024, time.January, 5, 18, 0, 0, 0, time.Local)
	if got := ComputeCurrentWeekTotal(entries, today); got != 5.5 {
		t.Fatalf("current week total = %v, want 5.5", got)
	}
	if got := ComputeCurrentWeekTotal(nil, today); got != 0 {
		t.Fatalf("empty current week total = %v, want 0", got)
	}
}

func TestComputeStats(t *testing.T) {
	entries := []Entry{
		entry(t, "Alice", "Cafe", "2024-01-02", 3),
		entry(t, "Bob", "Cafe", "2024-01-03", 1),
		entry(t, "Alice", "Bar", "2024-01-09", 2),
	}
	s := ComputeStats(entries, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	if s.Entries != 3 || s.People != 2 || s.Places != 2 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.GrandTotal != 6 || s.CurrentWeekTotal != 2 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if !s.HasBusiest || s.Busiest.Person != "Alice" || s.Busiest.Place != "Cafe" {
		t.Fatalf("unexpected busiest: %+v", s.Busiest)
	}

	empty := ComputeStats(nil, time.Now())
	if empty.HasBusiest || empty.GrandTotal != 0 {
		t.Fatalf("unexpected empty stats: %+v", empty)
	}
}
