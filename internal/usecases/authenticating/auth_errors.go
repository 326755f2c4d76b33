package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrMissingRequiredData   = errors.New("missing required data")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token expired")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")
	ErrAuthDisabled          = errors.New("authentication is disabled")
)

// AuthError is an authentication failure with its API code.
type AuthError struct {
	Err     error
	Code    string
	Email   string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports a failed login.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrMissingRequiredData)
}

// IsAuthorizationError reports a rejected token or role.
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewOperatorAuthError(baseErr error, code string, email string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Email:   email,
		Details: details,
	}
}
