package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-balance-keeper/internal/config"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
)

// ClientStorages groups the client-side storage repositories.
type ClientStorages struct {
	SessionStorage LocalSessionStorage

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file at cfg.DSN,
// applies the client schema and wires the session repository.
func NewClientStorages(ctx context.Context, cfg config.ClientDB, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionStorage: NewLocalSessionRepository(db, logger),
		db:             db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
