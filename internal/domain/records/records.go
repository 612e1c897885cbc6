// Package records provides generic in-memory filtering and ordering for
// list views. Every list screen works on a full snapshot fetched from the
// store; predicates are AND-combined, text matching is OR-combined across
// fields, and sorting is stable.
package records

import (
	"sort"
	"strings"
	"time"
)

// Predicate reports whether a record matches one filter dimension.
type Predicate[T any] func(T) bool

// Filter returns the records matching all predicates, preserving input order.
// Filtering is idempotent: applying the same predicate set twice yields the
// same result.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		matched := true
		for _, p := range preds {
			if p == nil {
				continue
			}
			if !p(item) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, item)
		}
	}
	return out
}

// SortStable sorts a copy of items with a stable sort.
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// TextMatch reports whether the search term occurs in any of the fields,
// case-insensitively. An empty term matches everything.
func TextMatch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// TextPredicate builds a predicate matching the term against the fields
// extracted from each record.
func TextPredicate[T any](term string, fields func(T) []string) Predicate[T] {
	if term == "" {
		return nil
	}
	return func(item T) bool {
		return TextMatch(term, fields(item)...)
	}
}

// Equals builds an exact-match predicate on one extracted field.
// An empty want matches everything (filter dimension not supplied).
func Equals[T any](want string, field func(T) string) Predicate[T] {
	if want == "" {
		return nil
	}
	return func(item T) bool {
		return field(item) == want
	}
}

// InDateRange reports whether d falls within [from, to] by calendar date.
// Bounds are inclusive; a nil bound leaves that side open.
func InDateRange(d time.Time, from, to *time.Time) bool {
	day := DateOf(d)
	if from != nil && day.Before(DateOf(*from)) {
		return false
	}
	if to != nil && day.After(DateOf(*to)) {
		return false
	}
	return true
}

// DateRangePredicate builds a date-range predicate on one extracted field.
func DateRangePredicate[T any](from, to *time.Time, field func(T) time.Time) Predicate[T] {
	if from == nil && to == nil {
		return nil
	}
	return func(item T) bool {
		return InDateRange(field(item), from, to)
	}
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// SameMonth reports whether t falls in the given calendar month and year.
func SameMonth(t time.Time, month time.Month, year int) bool {
	tu := t.UTC()
	return tu.Month() == month && tu.Year() == year
}
