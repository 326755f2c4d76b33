// Package filtering selects records by free text, exact categorical values and
// a date prefix. All predicates are ANDed and the input order is kept.
package filtering

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// All disables an exact-match filter.
const All = "all"

var ErrUnknownField = errors.New("unknown filter field")

// Record is anything the filter can inspect.
type Record interface {
	// SearchFields are matched against the free-text query.
	SearchFields() []string
	// FieldValue returns the value of a categorical field and whether the
	// record exposes it at all.
	FieldValue(field string) (string, bool)
	// DateValue is the ISO-like date or timestamp matched by DatePrefix.
	DateValue() string
}

type Criteria struct {
	Query      string
	Exact      map[string]string
	DatePrefix string
}

// IsNeutral reports whether c constrains nothing.
func (c Criteria) IsNeutral() bool {
	if c.Query != "" || c.DatePrefix != "" {
		return false
	}

	for _, v := range c.Exact {
		if active(v) {
			return false
		}
	}

	return true
}

// Validate fails with ErrUnknownField when an active exact filter names a
// field outside allowed.
func (c Criteria) Validate(allowed ...string) error {
	if unknown := c.UnknownFields(allowed...); len(unknown) > 0 {
		return errors.Wrap(ErrUnknownField, strings.Join(unknown, ", "))
	}

	return nil
}

// UnknownFields returns the sorted names of active exact filters outside
// allowed.
func (c Criteria) UnknownFields(allowed ...string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, field := range allowed {
		known[field] = struct{}{}
	}

	var unknown []string
	for field, v := range c.Exact {
		if !active(v) {
			continue
		}
		if _, ok := known[field]; !ok {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)

	return unknown
}

// Filter returns a new slice with the records matching c, in input order.
// It never returns nil.
func Filter[T Record](records []T, c Criteria) []T {
	query := strings.ToLower(c.Query)

	out := make([]T, 0, len(records))
	for _, r := range records {
		if match(r, query, c) {
			out = append(out, r)
		}
	}

	return out
}

func Match[T Record](r T, c Criteria) bool {
	return match(r, strings.ToLower(c.Query), c)
}

func match[T Record](r T, query string, c Criteria) bool {
	if query != "" && !containsAny(r.SearchFields(), query) {
		return false
	}

	for field, want := range c.Exact {
		if !active(want) {
			continue
		}

		got, ok := r.FieldValue(field)
		if !ok || got != want {
			return false
		}
	}

	if c.DatePrefix != "" && !strings.HasPrefix(r.DateValue(), c.DatePrefix) {
		return false
	}

	return true
}

func containsAny(fields []string, lowerQuery string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}

	return false
}

func active(v string) bool {
	return v != "" && v != All
}
