package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-balance-keeper/internal/adapter"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/models"
)

type clientAuthService struct {
	sessions store.LocalSessionStorage
	adapter  adapter.ServerAdapter
	now      func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.LocalSession, error) {
	profile, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return a.remember(ctx, profile)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LocalSession, error) {
	profile, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return a.remember(ctx, profile)
}

func (a *clientAuthService) remember(ctx context.Context, profile models.UserProfile) (models.LocalSession, error) {
	session := models.LocalSession{
		UserID:  profile.UserID,
		Name:    profile.Name,
		Email:   profile.Email,
		Token:   a.adapter.Token(),
		SavedAt: a.now().UTC(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.LocalSession{}, fmt.Errorf("caching session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.LocalSession{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("loading cached session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

// Logout contacts the server when a credential is held in memory or in the
// session cache. The local cleanup runs regardless of the server outcome.
func (a *clientAuthService) Logout(ctx context.Context) models.LogoutResult {
	log := logger.FromContext(ctx)
	var result models.LogoutResult

	token := a.adapter.Token()
	if token == "" {
		session, err := a.RestoreSession(ctx)
		if err != nil && !errors.Is(err, ErrNotLoggedIn) {
			log.Warn().Err(err).Str("func", "*clientAuthService.Logout").Msg("cached session unreadable, skipping server logout")
		}
		token = session.Token
	}

	if token != "" {
		if err := a.adapter.Logout(ctx); err != nil {
			log.Warn().Err(err).Str("func", "*clientAuthService.Logout").Msg("server logout failed, clearing local session anyway")
			result.ServerErr = err
		}
	}

	a.adapter.SetToken("")

	if err := a.sessions.ClearSession(ctx); err != nil {
		log.Err(err).Str("func", "*clientAuthService.Logout").Msg("clearing cached session failed")
		result.CacheErr = err
	}

	return result
}
