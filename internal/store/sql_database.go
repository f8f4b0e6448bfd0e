package store

import (
	"database/sql"

	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/migrations"
)

// DB wraps a connection pool with the classifier used to decide retries.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	migrate func(*sql.DB) error
}

// Migrate applies the embedded schema matching the database this DB was opened for.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return migrations.Migrate(db.DB)
	}
	return db.migrate(db.DB)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
