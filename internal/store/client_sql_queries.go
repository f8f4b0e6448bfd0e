// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-balance-keeper/models"
)

const (
	sessionTable = "session"
	// the table holds at most one row
	sessionRowID = 1
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveSessionQuery(s models.LocalSession) (string, []any, error) {
	query, args, err := sqlite.
		Replace(sessionTable).
		Columns("id", "user_id", "name", "email", "token", "saved_at").
		Values(sessionRowID, s.UserID, s.Name, s.Email, s.Token, s.SavedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLoadSessionQuery() (string, []any, error) {
	query, args, err := sqlite.
		Select("user_id", "name", "email", "token", "saved_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildClearSessionQuery() (string, []any, error) {
	query, args, err := sqlite.
		Delete(sessionTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
