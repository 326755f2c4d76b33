package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Authentication (1000-1999)
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
	ErrAuthDisabled          = "AUTH_011"

	// Validation (2000-2999)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrInvalidFilter       = "VAL_004"
	ErrInvalidDateRange    = "VAL_005"
	ErrRouteNotFound       = "VAL_006"
	ErrMethodNotAllowed    = "VAL_007"

	// Dataset (3000-3999)
	ErrNoSnapshot = "DATA_001"

	// Server (5000-5999)
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrRefreshRunning    = "SRV_005"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrAuthDisabled:          http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidFilter:         http.StatusBadRequest,
	ErrInvalidDateRange:      http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrNoSnapshot:            http.StatusServiceUnavailable,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrRefreshRunning:        http.StatusConflict,
}

// APIError is the error envelope every endpoint answers with.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e APIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// Status maps a code to its HTTP status. Unknown codes are server errors.
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError writes the envelope with the status mapped from code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error under the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
