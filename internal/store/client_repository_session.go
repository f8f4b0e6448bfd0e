package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/models"
)

// localSessionRepository keeps the signed-in user in the single-row
// "session" table of the client's SQLite file.
type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionStorage {
	return &localSessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession replaces the stored session.
func (r *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSessionQuery(session)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*localSessionRepository.SaveSession").Str("user_id", session.UserID).Msg("session saved")
	return nil
}

// LoadSession returns [ErrLocalSessionNotFound] when nobody is signed in.
func (r *localSessionRepository) LoadSession(ctx context.Context) (models.LocalSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return models.LocalSession{}, err
	}

	var s models.LocalSession
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.UserID, &s.Name, &s.Email, &s.Token, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("failed to load session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

// ClearSession is idempotent.
func (r *localSessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearSessionQuery()
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*localSessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*localSessionRepository.ClearSession").Msg("session cleared")
	return nil
}
