package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-balance-keeper/internal/adapter"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/models"
)

type clientLedgerService struct {
	auth     ClientAuthService
	sessions store.LocalSessionStorage
	adapter  adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientLedgerService(auth ClientAuthService, sessions store.LocalSessionStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientLedgerService {
	return &clientLedgerService{
		auth:     auth,
		sessions: sessions,
		adapter:  serverAdapter,
		logger:   logger,
	}
}

func (s *clientLedgerService) Summary(ctx context.Context) (models.UserSummary, error) {
	session, err := s.auth.RestoreSession(ctx)
	if err != nil {
		return models.UserSummary{}, err
	}

	summary, err := s.adapter.GetUserSummary(ctx, session.UserID)
	return summary, s.dropRejectedSession(ctx, err)
}

func (s *clientLedgerService) AddTransaction(ctx context.Context, input models.TransactionInput) (models.TransactionResult, error) {
	if _, err := s.auth.RestoreSession(ctx); err != nil {
		return models.TransactionResult{}, err
	}

	result, err := s.adapter.CreateTransaction(ctx, input)
	return result, s.dropRejectedSession(ctx, err)
}

// dropRejectedSession forgets the cached session once the server refused its
// credential; the error is passed through unchanged.
func (s *clientLedgerService) dropRejectedSession(ctx context.Context, err error) error {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	s.adapter.SetToken("")
	if clearErr := s.sessions.ClearSession(ctx); clearErr != nil {
		logger.FromContext(ctx).Err(clearErr).
			Str("func", "*clientLedgerService.dropRejectedSession").
			Msg("clearing rejected session failed")
	}

	return err
}
