package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseHours converts user input to a number of hours.
//
// Both dot (1.5) and comma (1,5) decimal separators are accepted. The value
// must be finite and strictly positive.
//
// Examples:
//
//	ParseHours("3")    -> 3, nil
//	ParseHours("1,5")  -> 1.5, nil
//	ParseHours("0")    -> 0, ErrInvalidHours
//	ParseHours("abc")  -> 0, ErrInvalidHours
func ParseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidHours
	}
	s = strings.ReplaceAll(s, ",", ".")
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidHours
	}
	if !validHours(h) {
		return 0, ErrInvalidHours
	}
	return h, nil
}

// FormatHours renders hours without trailing zeros (3, 2.5, 0.25).
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func validHours(h float64) bool {
	return !math.IsNaN(h) && !math.IsInf(h, 0) && h > 0
}
