package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-balance-keeper/models"
)

const (
	lockBalanceSQL  = `SELECT balance FROM users WHERE user_id = \$1 FOR UPDATE`
	insertTxSQL     = `INSERT INTO transactions \(id,user_id,amount,category,description,type,created_at\)`
	applyBalanceSQL = `UPDATE users SET balance = balance \+ \$1 WHERE user_id = \$2 RETURNING balance`
)

func newTestTransactionRepo(t *testing.T) (*transactionRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &transactionRepository{db: db, logger: db.logger, retryBase: time.Millisecond}, mock
}

func testTransaction(typ models.TransactionType, amount int64) models.Transaction {
	return models.Transaction{
		ID:        "tx-1",
		UserID:    "abc123",
		Amount:    decimal.NewFromInt(amount),
		Category:  "salary",
		Type:      typ,
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func expectSuccessfulWrite(mock sqlmock.Sqlmock, before, delta, after string) {
	mock.ExpectBegin()
	mock.ExpectQuery(lockBalanceSQL).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(before))
	mock.ExpectExec(insertTxSQL).
		WithArgs("tx-1", "abc123", sqlmock.AnyArg(), "salary", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(applyBalanceSQL).
		WithArgs(delta, "abc123").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(after))
	mock.ExpectCommit()
}

func TestCreateTransaction_IncomeIncreasesBalance(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	expectSuccessfulWrite(mock, "50", "100", "150")

	saved, balance, err := repo.CreateTransaction(context.Background(), testTransaction(models.Income, 100))
	require.NoError(t, err)
	assert.Equal(t, "tx-1", saved.ID)
	assert.True(t, balance.Equal(decimal.NewFromInt(150)), "balance %s", balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_ExpenseDecreasesBalance(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	expectSuccessfulWrite(mock, "0", "-50", "-50")

	_, balance, err := repo.CreateTransaction(context.Background(), testTransaction(models.Expense, 50))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(-50)), "balance %s", balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_UnknownUser(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockBalanceSQL).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}))
	mock.ExpectRollback()

	_, _, err := repo.CreateTransaction(context.Background(), testTransaction(models.Income, 10))
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_InsertFailureRollsBack(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockBalanceSQL).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("10"))
	mock.ExpectExec(insertTxSQL).
		WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, _, err := repo.CreateTransaction(context.Background(), testTransaction(models.Income, 10))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockBalanceSQL).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	expectSuccessfulWrite(mock, "50", "100", "150")

	_, balance, err := repo.CreateTransaction(context.Background(), testTransaction(models.Income, 100))
	require.NoError(t, err)
	assert.Equal(t, "150", balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	for range defaultMaxRetries + 1 {
		mock.ExpectBegin()
		mock.ExpectQuery(lockBalanceSQL).
			WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectRollback()
	}

	_, _, err := repo.CreateTransaction(context.Background(), testTransaction(models.Income, 100))
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_CommitFailure(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockBalanceSQL).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("10"))
	mock.ExpectExec(insertTxSQL).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(applyBalanceSQL).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("20"))
	mock.ExpectCommit().WillReturnError(assert.AnError)

	_, _, err := repo.CreateTransaction(context.Background(), testTransaction(models.Income, 10))
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestListUserTransactions(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	newer := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(transactionColumns).
		AddRow("tx-2", "abc123", "25.10", "food", "lunch", "EXPENSE", newer).
		AddRow("tx-1", "abc123", "100", "salary", nil, "INCOME", older)

	mock.ExpectQuery(`SELECT id, user_id, amount, category, description, type, created_at FROM transactions WHERE user_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("abc123").
		WillReturnRows(rows)

	list, err := repo.ListUserTransactions(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, models.Expense, list[0].Type)
	require.NotNil(t, list[0].Description)
	assert.Equal(t, "lunch", *list[0].Description)
	assert.Equal(t, "25.1", list[0].Amount.String())
	assert.Nil(t, list[1].Description)
	assert.Equal(t, models.Income, list[1].Type)
}

func TestListUserTransactions_QueryError(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions").WillReturnError(assert.AnError)

	_, err := repo.ListUserTransactions(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListUserTransactions_ScanError(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("tx-1"))

	_, err := repo.ListUserTransactions(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrScanningRows)
}
