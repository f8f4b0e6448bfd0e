package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-balance-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// TransactionRepository persists transactions together with the owner's balance.
type TransactionRepository interface {
	// CreateTransaction stores t and applies its delta to the owner's balance
	// in one database transaction, returning the stored row and the new balance.
	CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, decimal.Decimal, error)

	// ListUserTransactions returns the user's transactions, newest first.
	ListUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
