package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate reads an optional YYYY-MM-DD query value. An empty string yields
// nil so callers can tell "not given" apart from a real date.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// InDateRange reports whether the YYYY-MM-DD day falls inside [from, to].
// Nil bounds are open.
func InDateRange(day string, from, to *time.Time) bool {
	d, err := time.Parse(dateLayout, day)
	if err != nil {
		return false
	}
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
