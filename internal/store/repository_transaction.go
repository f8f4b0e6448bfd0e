package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/models"
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository]. Writes go through [withRetry] so that
// serialization failures and deadlocks are replayed from the start.
type transactionRepository struct {
	db        *DB
	logger    *logger.Logger
	retryBase time.Duration
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:        db,
		logger:    logger,
		retryBase: defaultRetryBase,
	}
}

// CreateTransaction records t and moves the owner's balance by
// t.BalanceDelta() atomically:
//
//  1. lock the owner's row (SELECT ... FOR UPDATE), [ErrNoUserWasFound] if absent;
//  2. insert the transaction;
//  3. UPDATE users SET balance = balance + delta RETURNING balance;
//  4. commit.
//
// Any failure rolls the whole unit back, so the balance always equals the
// sum of the user's INCOME minus EXPENSE rows.
func (r *transactionRepository) CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, decimal.Decimal, error) {
	var balance decimal.Decimal

	err := withRetry(ctx, r.db, r.retryBase, func(ctx context.Context) error {
		var txErr error
		balance, txErr = r.createTransaction(ctx, t)
		return txErr
	})
	if err != nil {
		return models.Transaction{}, decimal.Decimal{}, err
	}

	return t, balance, nil
}

func (r *transactionRepository) createTransaction(ctx context.Context, t models.Transaction) (decimal.Decimal, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*transactionRepository.CreateTransaction").
		Str("user_id", t.UserID).
		Str("transaction_id", t.ID).
		Logger()

	lockQuery, lockArgs, err := buildLockUserBalanceQuery(t.UserID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	insertQuery, insertArgs, err := buildInsertTransactionQuery(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	updateQuery, updateArgs, err := buildApplyBalanceDeltaQuery(t.UserID, t.BalanceDelta())
	if err != nil {
		return decimal.Decimal{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var current decimal.Decimal
	if err = tx.QueryRowContext(ctx, lockQuery, lockArgs...).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Msg("owner of the transaction does not exist")
			return decimal.Decimal{}, ErrNoUserWasFound
		}
		log.Err(err).Msg("failed to lock user balance")
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		log.Err(err).Msg("failed to insert transaction")
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, affErr := result.RowsAffected(); affErr == nil && affected == 0 {
		log.Error().Msg("insert affected no rows")
		return decimal.Decimal{}, ErrTransactionNotSaved
	}

	var balance decimal.Decimal
	if err = tx.QueryRowContext(ctx, updateQuery, updateArgs...).Scan(&balance); err != nil {
		log.Err(err).Msg("failed to apply balance delta")
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("previous_balance", current.String()).
		Str("balance", balance.String()).
		Msg("transaction recorded")

	return balance, nil
}

func (r *transactionRepository) ListUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUserTransactionsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListUserTransactions").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.ListUserTransactions").
			Str("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, 16)
	for rows.Next() {
		var t models.Transaction
		if err = rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Description, &t.Type, &t.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "*transactionRepository.ListUserTransactions").
				Str("user_id", userID).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.ListUserTransactions").
			Str("user_id", userID).
			Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transactions, nil
}
