package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrInvalidFilter, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{ErrNoSnapshot, http.StatusServiceUnavailable},
		{ErrRefreshRunning, http.StatusConflict},
		{"NOPE_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "boom", map[string]string{"field": "color"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "boom", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidFilter).Code)

	apiErr := FromError(errors.New("bad date"), ErrInvalidDateRange)
	assert.Equal(t, ErrInvalidDateRange, apiErr.Code)
	assert.Equal(t, "VAL_005: bad date", apiErr.Error())
}
