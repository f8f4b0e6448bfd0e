package service

import (
	"context"

	"github.com/MKhiriev/go-balance-keeper/models"
)

// ClientAuthService defines the client-side contract for registration,
// authentication and the locally cached session.
type ClientAuthService interface {
	// Register creates an account on the server and caches the new session.
	Register(ctx context.Context, req models.RegisterRequest) (models.LocalSession, error)

	// Login authenticates against the server and caches the session.
	Login(ctx context.Context, req models.LoginRequest) (models.LocalSession, error)

	// RestoreSession loads the cached session and hands its credential to the
	// server adapter. Returns ErrNotLoggedIn when nothing is cached.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// Logout performs a best-effort server logout and then always drops the
	// in-memory credential and the cached session. It never stops early; every
	// step's outcome is reported in the result.
	Logout(ctx context.Context) models.LogoutResult
}

// ClientLedgerService reads and writes the signed-in user's ledger.
type ClientLedgerService interface {
	Summary(ctx context.Context) (models.UserSummary, error)
	AddTransaction(ctx context.Context, input models.TransactionInput) (models.TransactionResult, error)
}
