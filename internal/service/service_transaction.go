package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-balance-keeper/internal/app"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/internal/utils"
	"github.com/MKhiriev/go-balance-keeper/internal/validators"
	"github.com/MKhiriev/go-balance-keeper/models"
)

type transactionService struct {
	transactionRepository store.TransactionRepository
	validator             validators.Validator
	ids                   idGenerator
	now                   func() time.Time

	logger *logger.Logger
}

func NewTransactionService(transactionRepository store.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		validator:             validators.NewTransactionValidator(),
		ids:                   utils.NewUUIDGenerator(),
		now:                   time.Now,
		logger:                logger,
	}
}

// CreateTransaction validates the input before looking at the identity, so a
// malformed body is reported as a validation error even without a session.
func (s *transactionService) CreateTransaction(ctx context.Context, input models.TransactionInput) (models.TransactionResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.TransactionResult{}, err
	}

	identity, ok := utils.IdentityFromContext(ctx)
	if !ok {
		return models.TransactionResult{}, ErrNoIdentity
	}

	transaction, err := s.newTransaction(identity.UserID, input)
	if err != nil {
		return models.TransactionResult{}, err
	}

	saved, balance, err := s.transactionRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionService.CreateTransaction").
			Str("user_id", identity.UserID).
			Msg("saving transaction failed")
		return models.TransactionResult{}, fmt.Errorf("saving transaction failed: %w", err)
	}

	return models.TransactionResult{
		Message:     app.MsgTransactionSaved,
		Transaction: saved,
		Balance:     balance,
	}, nil
}

func (s *transactionService) newTransaction(userID string, input models.TransactionInput) (models.Transaction, error) {
	createdAt := s.now().UTC()
	if input.CreatedAt != nil {
		parsed, err := validators.ParseCreatedAt(*input.CreatedAt)
		if err != nil {
			return models.Transaction{}, &validators.ValidationError{Messages: []string{validators.MsgCreatedAtInvalid}}
		}
		createdAt = parsed
	}

	var description *string
	if input.Description != nil && strings.TrimSpace(*input.Description) != "" {
		d := strings.TrimSpace(*input.Description)
		description = &d
	}

	return models.Transaction{
		ID:          s.ids.Generate(),
		UserID:      userID,
		Amount:      *input.Amount,
		Category:    strings.TrimSpace(*input.Category),
		Description: description,
		Type:        *input.Type,
		CreatedAt:   createdAt,
	}, nil
}
