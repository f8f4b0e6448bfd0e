package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/internal/utils"
	"github.com/MKhiriev/go-balance-keeper/internal/validators"
	"github.com/MKhiriev/go-balance-keeper/models"
)

type userService struct {
	userRepository        store.UserRepository
	transactionRepository store.TransactionRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, transactionRepository store.TransactionRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

// GetUserSummary checks, in order: an identity is present (ErrNoIdentity), it
// matches userID (ErrUnauthorizedAccessToDifferentUserData), userID is well
// formed (validators.ErrInvalidUserID) and the user exists
// (store.ErrNoUserWasFound).
func (s *userService) GetUserSummary(ctx context.Context, userID string) (models.UserSummary, error) {
	log := logger.FromContext(ctx)

	identity, ok := utils.IdentityFromContext(ctx)
	if !ok {
		return models.UserSummary{}, ErrNoIdentity
	}

	if identity.UserID != userID {
		log.Warn().
			Str("func", "*userService.GetUserSummary").
			Str("user_id", identity.UserID).
			Str("requested_user_id", userID).
			Msg("attempt to read another user's data")
		return models.UserSummary{}, ErrUnauthorizedAccessToDifferentUserData
	}

	if err := validators.ValidateUserID(userID); err != nil {
		return models.UserSummary{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("user lookup failed: %w", err)
	}

	transactions, err := s.transactionRepository.ListUserTransactions(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userService.GetUserSummary").Str("user_id", userID).Msg("listing transactions failed")
		return models.UserSummary{}, fmt.Errorf("listing transactions failed: %w", err)
	}

	return buildSummary(user, transactions), nil
}

// buildSummary expects transactions sorted newest first.
func buildSummary(user models.User, transactions []models.Transaction) models.UserSummary {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case models.Income:
			income = income.Add(t.Amount)
		case models.Expense:
			expense = expense.Add(t.Amount)
		}
	}

	recent := transactions
	if len(recent) > models.RecentTransactionsLimit {
		recent = recent[:models.RecentTransactionsLimit]
	}

	return models.UserSummary{
		User:               user.Profile(),
		Balance:            user.Balance,
		Income:             income,
		Expense:            expense,
		RecentTransactions: recent,
		Transactions:       transactions,
	}
}
