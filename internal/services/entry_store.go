package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hourlog/internal/core"
	"hourlog/internal/kv"
	applog "hourlog/internal/log"
)

// ErrPersistence wraps every failed write-through. The mutation that caused
// it has been rolled back.
var ErrPersistence = errors.New("persist collections")

type (
	// Confirmer asks the user to approve a destructive operation.
	Confirmer interface {
		Confirm(ctx context.Context, prompt string) bool
	}

	// ConfirmFunc adapts a function to Confirmer.
	ConfirmFunc func(ctx context.Context, prompt string) bool
)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// AlwaysConfirm approves every prompt.
var AlwaysConfirm = ConfirmFunc(func(context.Context, string) bool { return true })

// SortOrder selects how Entries orders its result.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortDateAsc
	SortDateDesc
)

// EntryFilter narrows Entries. Person and Place match case-insensitive substrings.
type EntryFilter struct {
	Person string
	Place  string
	Sort   SortOrder
}

// EntryStore owns people, places and entries and writes all three through
// the key-value store after every mutation. It is not safe for concurrent use.
type EntryStore struct {
	store   kv.Store
	confirm Confirmer
	log     *applog.StructuredLogger
	newID   func() (string, error)

	people  []string
	places  []string
	entries []core.Entry
}

// NewEntryStore loads the collections from store.
func NewEntryStore(ctx context.Context, store kv.Store, confirm Confirmer) (*EntryStore, error) {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	logger := applog.FromContext(ctx).WithComponent(applog.ComponentStore)

	s := &EntryStore{
		store:   store,
		confirm: confirm,
		log:     applog.NewStructuredLogger(logger),
		newID:   newEntryID,
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func newEntryID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *EntryStore) load(ctx context.Context) error {
	var raw [3][]byte
	keys := [3]string{kv.KeyPeople, kv.KeyPlaces, kv.KeyEntries}

	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			v, _, err := s.store.Get(gctx, key)
			if err != nil {
				return err
			}
			raw[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load collections: %w", err)
	}

	c, err := DecodeCollections(raw[0], raw[1], raw[2])
	if err != nil {
		return fmt.Errorf("load collections: %w", err)
	}
	s.people, s.places, s.entries = c.People, c.Places, c.Entries

	// Older data may lack ids or carry stale week fields.
	assigned := 0
	for i := range s.entries {
		e := &s.entries[i]
		if e.ID == "" {
			id, err := s.newID()
			if err != nil {
				return fmt.Errorf("assign entry id: %w", err)
			}
			e.ID = id
			assigned++
		}
		e.Refresh()
		if err := e.Validate(); err != nil {
			slog.WarnContext(ctx, "Stored entry is invalid",
				applog.FieldEntryID, e.ID,
				applog.FieldDate, e.Date,
				applog.FieldError, err)
		}
	}

	slog.DebugContext(ctx, "Collections loaded",
		"people", len(s.people),
		"places", len(s.places),
		"entries", len(s.entries))

	if assigned > 0 {
		if err := s.persist(ctx); err != nil {
			return err
		}
		slog.InfoContext(ctx, "Assigned ids to stored entries", applog.FieldCount, assigned)
	}
	return nil
}

func (s *EntryStore) persist(ctx context.Context) error {
	items, err := Collections{People: s.people, Places: s.places, Entries: s.entries}.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := kv.SetAll(ctx, s.store, items); err != nil {
		s.log.LogError(ctx, "Failed to persist collections", err, applog.OpPersist, nil)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// mutate applies fn and writes through. On a failed write the previous state
// is restored.
func (s *EntryStore) mutate(ctx context.Context, fn func()) error {
	people := slices.Clone(s.people)
	places := slices.Clone(s.places)
	entries := slices.Clone(s.entries)

	fn()

	if err := s.persist(ctx); err != nil {
		s.people, s.places, s.entries = people, places, entries
		return err
	}
	return nil
}

// AddPerson adds a person. Blank names and exact duplicates are rejected.
func (s *EntryStore) AddPerson(ctx context.Context, name string) error {
	name, err := addName(s.people, name)
	if err != nil {
		return fmt.Errorf("add person: %w", err)
	}
	if err := s.mutate(ctx, func() { s.people = append(s.people, name) }); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Person added", applog.FieldName, name)
	return nil
}

// AddPlace adds a place. Blank names and exact duplicates are rejected.
func (s *EntryStore) AddPlace(ctx context.Context, name string) error {
	name, err := addName(s.places, name)
	if err != nil {
		return fmt.Errorf("add place: %w", err)
	}
	if err := s.mutate(ctx, func() { s.places = append(s.places, name) }); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Place added", applog.FieldName, name)
	return nil
}

func addName(existing []string, name string) (string, error) {
	name, err := core.NormalizeName(name)
	if err != nil {
		return "", err
	}
	if slices.Contains(existing, name) {
		return "", fmt.Errorf("%q: %w", name, core.ErrDuplicateName)
	}
	return name, nil
}

// RemovePerson removes a person by name. Entries referring to the person are
// kept. removed is false when no such person exists.
func (s *EntryStore) RemovePerson(ctx context.Context, name string) (removed bool, err error) {
	i := slices.Index(s.people, strings.TrimSpace(name))
	if i < 0 {
		return false, nil
	}
	if err := s.mutate(ctx, func() { s.people = slices.Delete(s.people, i, i+1) }); err != nil {
		return false, err
	}
	slog.InfoContext(ctx, "Person removed", applog.FieldName, name)
	return true, nil
}

// RemovePlace removes a place by name. Entries referring to the place are
// kept. removed is false when no such place exists.
func (s *EntryStore) RemovePlace(ctx context.Context, name string) (removed bool, err error) {
	i := slices.Index(s.places, strings.TrimSpace(name))
	if i < 0 {
		return false, nil
	}
	if err := s.mutate(ctx, func() { s.places = slices.Delete(s.places, i, i+1) }); err != nil {
		return false, err
	}
	slog.InfoContext(ctx, "Place removed", applog.FieldName, name)
	return true, nil
}

// AddEntry validates the raw input, assigns an id and appends the entry.
func (s *EntryStore) AddEntry(ctx context.Context, in core.EntryInput) (core.Entry, error) {
	e, err := in.Parse()
	if err != nil {
		return core.Entry{}, fmt.Errorf("add entry: %w", err)
	}
	if e.ID, err = s.newID(); err != nil {
		return core.Entry{}, fmt.Errorf("add entry: assign id: %w", err)
	}

	if err := s.mutate(ctx, func() { s.entries = append(s.entries, e) }); err != nil {
		return core.Entry{}, err
	}
	s.log.LogEntryChanged(ctx, applog.OpCreate, e.ID, e.Person, e.Place, e.Date, e.Hours, e.WeekKey)
	return e, nil
}

// EditEntry replaces the date and hours of an entry and recomputes its week.
// found is false, with no error, when id is unknown.
func (s *EntryStore) EditEntry(ctx context.Context, id, date, hours string) (updated core.Entry, found bool, err error) {
	i := s.indexOf(id)
	if i < 0 {
		return core.Entry{}, false, nil
	}

	d, err := core.ParseDate(date)
	if err != nil {
		return core.Entry{}, true, fmt.Errorf("edit entry: %w", err)
	}
	h, err := core.ParseHours(hours)
	if err != nil {
		return core.Entry{}, true, fmt.Errorf("edit entry: %w", err)
	}

	err = s.mutate(ctx, func() {
		e := &s.entries[i]
		e.Date = core.FormatDate(d)
		e.Hours = h
		e.Refresh()
	})
	if err != nil {
		return core.Entry{}, true, err
	}

	e := s.entries[i]
	s.log.LogEntryChanged(ctx, applog.OpUpdate, e.ID, e.Person, e.Place, e.Date, e.Hours, e.WeekKey)
	return e, true, nil
}

// DeleteEntry removes an entry after confirmation. deleted is false when the
// id is unknown or the user declined.
func (s *EntryStore) DeleteEntry(ctx context.Context, id string) (deleted bool, err error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	e := s.entries[i]
	prompt := fmt.Sprintf("Delete %s at %s on %s (%s hours)?", e.Person, e.Place, e.Date, core.FormatHours(e.Hours))
	if !s.confirm.Confirm(ctx, prompt) {
		return false, nil
	}

	if err := s.mutate(ctx, func() { s.entries = slices.Delete(s.entries, i, i+1) }); err != nil {
		return false, err
	}
	s.log.LogEntryChanged(ctx, applog.OpDelete, e.ID, e.Person, e.Place, e.Date, e.Hours, e.WeekKey)
	return true, nil
}

// ClearAll empties all three collections after confirmation.
func (s *EntryStore) ClearAll(ctx context.Context) (cleared bool, err error) {
	if !s.confirm.Confirm(ctx, "Delete all people, places and entries?") {
		return false, nil
	}
	err = s.mutate(ctx, func() {
		s.people, s.places, s.entries = nil, nil, nil
	})
	if err != nil {
		return false, err
	}
	slog.InfoContext(ctx, "All collections cleared", applog.FieldOperation, applog.OpClear)
	return true, nil
}

func (s *EntryStore) indexOf(id string) int {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.entries, func(e core.Entry) bool { return e.ID == id })
}

// People returns the people in insertion order.
func (s *EntryStore) People() []string {
	return slices.Clone(s.people)
}

// Places returns the places in insertion order.
func (s *EntryStore) Places() []string {
	return slices.Clone(s.places)
}

// Entry returns the entry with the given id.
func (s *EntryStore) Entry(id string) (core.Entry, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return core.Entry{}, false
	}
	return s.entries[i], true
}

// Entries returns a filtered, optionally date-sorted copy of the entries.
func (s *EntryStore) Entries(f EntryFilter) []core.Entry {
	person := strings.ToLower(strings.TrimSpace(f.Person))
	place := strings.ToLower(strings.TrimSpace(f.Place))

	out := make([]core.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if person != "" && !strings.Contains(strings.ToLower(e.Person), person) {
			continue
		}
		if place != "" && !strings.Contains(strings.ToLower(e.Place), place) {
			continue
		}
		out = append(out, e)
	}

	switch f.Sort {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	}
	return out
}

// Snapshot returns a copy of all three collections.
func (s *EntryStore) Snapshot() Collections {
	return Collections{
		People:  s.People(),
		Places:  s.Places(),
		Entries: slices.Clone(s.entries),
	}
}

// WeeklyTotals aggregates the current entries by week, person and place.
func (s *EntryStore) WeeklyTotals() core.WeeklyTotals {
	return core.ComputeWeeklyTotals(s.entries)
}

// Busiest returns the (week, person, place) group with the most hours.
func (s *EntryStore) Busiest() (core.WeeklyTotal, bool) {
	return core.ComputeBusiestWeek(s.WeeklyTotals())
}

// GrandTotal sums all logged hours.
func (s *EntryStore) GrandTotal() float64 {
	return core.ComputeGrandTotal(s.entries)
}

// CurrentWeekTotal sums the hours logged in the week containing today.
func (s *EntryStore) CurrentWeekTotal(today time.Time) float64 {
	return core.ComputeCurrentWeekTotal(s.entries, today)
}

// Stats summarizes the current entries.
func (s *EntryStore) Stats(today time.Time) core.Stats {
	return core.ComputeStats(s.entries, today)
}
