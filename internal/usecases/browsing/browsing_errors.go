package browsing

import (
	"errors"
	"fmt"
)

var ErrInvalidFilter = errors.New("invalid filter")

// BrowsingError carries the API code and the offending filter.
type BrowsingError struct {
	Err     error
	Code    string
	Field   string
	Details string
}

func (e *BrowsingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BrowsingError) Unwrap() error {
	return e.Err
}

func NewBrowsingError(err error, code string, field string, details string) *BrowsingError {
	return &BrowsingError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}
