// Package filter holds the search-and-dropdown matching shared by every
// admin list endpoint: a case-insensitive substring search over a few text
// fields, ANDed with exact-match dropdown filters where "all" (or nothing)
// matches everything.
package filter

import (
	"strings"
	"time"
)

// All is the dropdown value that disables a filter.
const All = "all"

// MatchesSearch reports whether term occurs, ignoring case, in any of the
// fields. A blank term matches.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchesExact reports whether value satisfies the dropdown selection.
func MatchesExact[T ~string](selected string, value T) bool {
	if selected == "" || selected == All {
		return true
	}
	return string(value) == selected
}

// Apply keeps the items for which keep returns true. The result is never
// nil so it encodes as an empty JSON array.
func Apply[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// CountBy tallies items by the key returned from key.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// Contains reports whether t falls inside the bucket ending at now. Week and
// month are the trailing 7 and 30 calendar days, today included.
func (d DateRange) Contains(t, now time.Time) bool {
	now = now.UTC()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	t = t.UTC()

	switch d {
	case "", DateRangeAll:
		return true
	case DateRangeToday:
		return !t.Before(startOfToday) && t.Before(startOfToday.AddDate(0, 0, 1))
	case DateRangeWeek:
		return !t.Before(startOfToday.AddDate(0, 0, -6)) && !t.After(now)
	case DateRangeMonth:
		return !t.Before(startOfToday.AddDate(0, 0, -29)) && !t.After(now)
	default:
		return false
	}
}
