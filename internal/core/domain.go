package core

import (
	"errors"
	"strings"
)

type (
	// Entry is one recorded (person, place, date, hours) observation.
	// WeekKey and WeekLabel are derived from Date and are never set directly.
	Entry struct {
		ID        string  `json:"id,omitempty"`
		Person    string  `json:"person"`
		Place     string  `json:"place"`
		Date      string  `json:"date"`
		Hours     float64 `json:"hours"`
		WeekKey   string  `json:"weekKey"`
		WeekLabel string  `json:"weekLabel"`
	}

	// EntryInput carries the raw strings a user typed for a new entry.
	EntryInput struct {
		Person string
		Place  string
		Date   string
		Hours  string
	}
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrDuplicateName = errors.New("name already exists")
	ErrEmptyPerson   = errors.New("person is required")
	ErrEmptyPlace    = errors.New("place is required")
	ErrEmptyDate     = errors.New("date is required")
	ErrInvalidDate   = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrInvalidHours  = errors.New("hours must be a positive number")
)

var validationErrors = []error{
	ErrEmptyName,
	ErrDuplicateName,
	ErrEmptyPerson,
	ErrEmptyPlace,
	ErrEmptyDate,
	ErrInvalidDate,
	ErrInvalidHours,
}

// IsValidation reports whether err is a user input problem that should be
// shown to the user rather than treated as a failure.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// NormalizeName trims a person or place name and rejects blanks.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// Parse validates the input and builds an Entry with its week fields filled in.
// The ID is left empty for the caller to assign.
func (in EntryInput) Parse() (Entry, error) {
	person := strings.TrimSpace(in.Person)
	if person == "" {
		return Entry{}, ErrEmptyPerson
	}
	place := strings.TrimSpace(in.Place)
	if place == "" {
		return Entry{}, ErrEmptyPlace
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return Entry{}, err
	}
	hours, err := ParseHours(in.Hours)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		Person: person,
		Place:  place,
		Date:   FormatDate(date),
		Hours:  hours,
	}
	e.Refresh()
	return e, nil
}

// Refresh recomputes the cached week fields from Date.
func (e *Entry) Refresh() {
	w := ComputeWeek(e.Date)
	e.WeekKey = w.Key
	e.WeekLabel = w.Label
}

// Validate checks an entry that was loaded from storage.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Person) == "" {
		return ErrEmptyPerson
	}
	if strings.TrimSpace(e.Place) == "" {
		return ErrEmptyPlace
	}
	if _, err := ParseDate(e.Date); err != nil {
		return err
	}
	if !validHours(e.Hours) {
		return ErrInvalidHours
	}
	return nil
}
