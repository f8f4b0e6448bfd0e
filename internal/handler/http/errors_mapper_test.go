package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-balance-keeper/internal/service"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/internal/validators"
)

func Test_resolveError(t *testing.T) {
	const fallback = "Failed to do the thing"

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation keeps its messages",
			err:        &validators.ValidationError{Messages: []string{"A", "B"}},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation error: A, B",
		},
		{
			name:       "wrapped deliberate status survives",
			err:        fmt.Errorf("user lookup failed: %w", store.ErrNoUserWasFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "forbidden",
			err:        service.ErrUnauthorizedAccessToDifferentUserData,
			wantStatus: http.StatusForbidden,
			wantMsg:    "Forbidden: You can only access your own data",
		},
		{
			name:       "duplicate email",
			err:        fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantMsg:    "Email is already registered",
		},
		{
			name:       "unknown error falls back to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    fallback,
		},
		{
			name:       "token creation failure is not exposed",
			err:        service.ErrTokenCreationFailed,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := resolveError(tt.err, fallback)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
