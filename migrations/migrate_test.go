// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose queries the version table itself; sqlmock has no expectations
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrateClient_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = MigrateClient(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	for name, fn := range map[string]func(*sql.DB) error{"server": Migrate, "client": MigrateClient} {
		err := fn(db)
		if err == nil {
			t.Fatalf("%s: expected error when db is nil, got nil", name)
		}

		if !strings.Contains(err.Error(), "db is nil") {
			t.Errorf("%s: expected 'db is nil' error, got: %v", name, err)
		}
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	server, err := fs.Glob(embedMigrations, "server/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"server/00001_create_users.sql", "server/00002_create_transactions.sql"}, server)

	client, err := fs.Glob(embedMigrations, "client/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"client/00001_create_session.sql"}, client)

	body, err := fs.ReadFile(embedMigrations, "server/00002_create_transactions.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "CHECK (amount > 0)")
	assert.Contains(t, string(body), "REFERENCES users (user_id)")
}
