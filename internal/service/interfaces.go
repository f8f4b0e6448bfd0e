package service

import (
	"context"

	"github.com/MKhiriev/go-balance-keeper/models"
)

// AuthService registers and authenticates users and issues or verifies
// session credentials.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies signature, issuer and expiry. An expired credential
	// yields ErrTokenIsExpired; any other failure wraps ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves the per-user balance summary.
type UserService interface {
	// GetUserSummary returns the summary of userID on behalf of the identity
	// in ctx. Only the owner may read it.
	GetUserSummary(ctx context.Context, userID string) (models.UserSummary, error)
}

// TransactionService records transactions and keeps balances in step.
type TransactionService interface {
	// CreateTransaction validates input, stores the transaction for the
	// identity in ctx and returns it with the updated balance.
	CreateTransaction(ctx context.Context, input models.TransactionInput) (models.TransactionResult, error)
}

// AppInfoService reports build information and liveness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckHealth returns ErrStorageUnavailable when the database does not
	// answer a ping.
	CheckHealth(ctx context.Context) error
}
