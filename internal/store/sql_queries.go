package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-balance-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"user_id",
		"name",
		"email",
		"password_hash",
		"balance",
		"created_at",
	}

	transactionColumns = []string{
		"id",
		"user_id",
		"amount",
		"category",
		"description",
		"type",
		"created_at",
	}
)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(models.User{}.TableName()).
		Columns("user_id", "name", "email", "password_hash").
		Values(user.UserID, user.Name, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(column, value string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildLockUserBalanceQuery selects the balance row FOR UPDATE so that
// concurrent writers for the same user serialize on it.
func buildLockUserBalanceQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select("balance").
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertTransactionQuery(t models.Transaction) (string, []any, error) {
	query, args, err := psql.
		Insert(models.Transaction{}.TableName()).
		Columns(transactionColumns...).
		Values(t.ID, t.UserID, t.Amount, t.Category, t.Description, string(t.Type), t.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildApplyBalanceDeltaQuery(userID string, delta decimal.Decimal) (string, []any, error) {
	query, args, err := psql.
		Update(models.User{}.TableName()).
		Set("balance", sq.Expr("balance + ?", delta)).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING balance").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListUserTransactionsQuery(userID string) (string, []any, error) {
	query, args, err := psql.
		Select(transactionColumns...).
		From(models.Transaction{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
