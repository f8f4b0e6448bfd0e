package client

import (
	"context"

	"github.com/MKhiriev/go-balance-keeper/internal/service"
	"github.com/MKhiriev/go-balance-keeper/models"
)

// Logout signs the user out. The server call is best effort; the local
// session is always cleared and the user is always sent to the login
// prompt, whatever failed before. Every step's error is reported in the
// result, which callers may discard once the cleanup has happened.
func Logout(ctx context.Context, auth service.ClientAuthService, navigator Navigator) models.LogoutResult {
	result := auth.Logout(ctx)
	result.NavigateErr = navigator.ToLogin(ctx)
	return result
}
