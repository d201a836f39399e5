package core

import "time"

// TotalKey groups entries by week, person and place.
type TotalKey struct {
	WeekKey string
	Person  string
	Place   string
}

// WeeklyTotal is the hours logged by one person at one place in one week.
type WeeklyTotal struct {
	TotalKey
	WeekLabel string
	Hours     float64
}

// WeeklyTotals is an insertion-ordered mapping from TotalKey to WeeklyTotal.
// Order follows the first occurrence of each key in the aggregated entries.
type WeeklyTotals struct {
	keys   []TotalKey
	totals map[TotalKey]*WeeklyTotal
}

// Len returns the number of groups.
func (w WeeklyTotals) Len() int {
	return len(w.keys)
}

// Get returns the total for a key.
func (w WeeklyTotals) Get(k TotalKey) (WeeklyTotal, bool) {
	t, ok := w.totals[k]
	if !ok {
		return WeeklyTotal{}, false
	}
	return *t, true
}

// All returns every total in first-occurrence order.
func (w WeeklyTotals) All() []WeeklyTotal {
	out := make([]WeeklyTotal, 0, len(w.keys))
	for _, k := range w.keys {
		out = append(out, *w.totals[k])
	}
	return out
}

// Stats is the dashboard summary of a collection of entries.
type Stats struct {
	Entries          int
	People           int
	Places           int
	GrandTotal       float64
	CurrentWeekTotal float64
	Busiest          WeeklyTotal
	HasBusiest       bool
}

// ComputeWeeklyTotals sums hours per (week, person, place).
func ComputeWeeklyTotals(entries []Entry) WeeklyTotals {
	w := WeeklyTotals{totals: make(map[TotalKey]*WeeklyTotal)}
	for _, e := range entries {
		k := TotalKey{WeekKey: e.WeekKey, Person: e.Person, Place: e.Place}
		t, ok := w.totals[k]
		if !ok {
			t = &WeeklyTotal{TotalKey: k, WeekLabel: e.WeekLabel}
			w.totals[k] = t
			w.keys = append(w.keys, k)
		}
		t.Hours += e.Hours
	}
	return w
}

// ComputeBusiestWeek returns the group with the most hours. On ties the first
// group in iteration order wins. The bool is false when there are no totals.
func ComputeBusiestWeek(totals WeeklyTotals) (WeeklyTotal, bool) {
	var (
		best  WeeklyTotal
		found bool
	)
	for _, t := range totals.All() {
		if !found || t.Hours > best.Hours {
			best = t
			found = true
		}
	}
	return best, found
}

// ComputeGrandTotal sums the hours of every entry.
func ComputeGrandTotal(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// ComputeCurrentWeekTotal sums the hours of entries in the week containing today.
func ComputeCurrentWeekTotal(entries []Entry, today time.Time) float64 {
	key := WeekOf(today).Key
	var total float64
	for _, e := range entries {
		if e.WeekKey == key {
			total += e.Hours
		}
	}
	return total
}

// ComputeStats builds the dashboard summary.
func ComputeStats(entries []Entry, today time.Time) Stats {
	people := map[string]struct{}{}
	places := map[string]struct{}{}
	for _, e := range entries {
		people[e.Person] = struct{}{}
		places[e.Place] = struct{}{}
	}

	s := Stats{
		Entries:          len(entries),
		People:           len(people),
		Places:           len(places),
		GrandTotal:       ComputeGrandTotal(entries),
		CurrentWeekTotal: ComputeCurrentWeekTotal(entries, today),
	}
	s.Busiest, s.HasBusiest = ComputeBusiestWeek(ComputeWeeklyTotals(entries))
	return s
}
