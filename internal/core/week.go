package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used everywhere entries are stored.
	DateLayout = "2006-01-02"

	// InvalidDate marks week fields derived from a date that could not be parsed.
	InvalidDate = "Invalid Date"
)

// WeekInfo identifies the Monday to Sunday span a date falls in.
type WeekInfo struct {
	Number int
	Start  time.Time
	End    time.Time
	Key    string
	Label  string
	Valid  bool
}

// ParseDate parses a YYYY-MM-DD calendar date. The result is midnight UTC so
// that day arithmetic never crosses a DST or zone boundary.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalendarDate drops the time of day and zone of t, keeping the calendar day
// as seen in t's own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing d.
func WeekStart(d time.Time) time.Time {
	d = CalendarDate(d)
	day := int(d.Weekday())
	if day == 0 {
		day = 7
	}
	return d.AddDate(0, 0, -(day - 1))
}

// WeekEnd returns the Sunday closing the week containing d.
func WeekEnd(d time.Time) time.Time {
	return WeekStart(d).AddDate(0, 0, 6)
}

// WeekNumber counts weeks from January 1st, offset by the weekday January 1st
// falls on (Sunday=0). It is not the ISO-8601 week number: when January 1st is
// a Sunday that day is week 0, and the last days of December keep counting past
// week 52 instead of rolling over.
func WeekNumber(d time.Time) int {
	d = CalendarDate(d)
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(jan1) / (24 * time.Hour))
	n := days + int(jan1.Weekday())
	return (n + 6) / 7
}

// WeekOf computes the week identity of a calendar date.
func WeekOf(t time.Time) WeekInfo {
	d := CalendarDate(t)
	start := WeekStart(d)
	end := WeekEnd(d)
	n := WeekNumber(d)

	return WeekInfo{
		Number: n,
		Start:  start,
		End:    end,
		Key:    fmt.Sprintf("W%d-%s", n, FormatDate(start)),
		Label:  fmt.Sprintf("Week %d (%s → %s)", n, FormatDate(start), FormatDate(end)),
		Valid:  true,
	}
}

// ComputeWeek is WeekOf for a YYYY-MM-DD string. Malformed input produces an
// invalid WeekInfo whose key and label carry the InvalidDate marker.
func ComputeWeek(date string) WeekInfo {
	t, err := ParseDate(date)
	if err != nil {
		return WeekInfo{
			Key:   "WNaN-" + InvalidDate,
			Label: fmt.Sprintf("Week NaN (%s → %s)", InvalidDate, InvalidDate),
		}
	}
	return WeekOf(t)
}
