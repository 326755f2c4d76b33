package metrics

import (
	"errors"
	"fmt"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// MetricsError carries the API code for a failed aggregation.
type MetricsError struct {
	Err     error
	Code    string
	Details string
}

func (e *MetricsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}

func NewMetricsError(err error, code string, details string) *MetricsError {
	return &MetricsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
