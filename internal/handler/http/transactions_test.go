package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-balance-keeper/internal/app"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/models"
)

// expectLedger makes the transaction repository apply every delta to an
// in-memory balance that starts at opening.
func (f *apiFixture) expectLedger(opening int64) {
	balance := decimal.NewFromInt(opening)
	f.transactions.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx models.Transaction) (models.Transaction, decimal.Decimal, error) {
			balance = balance.Add(tx.BalanceDelta())
			return tx, balance, nil
		},
	).AnyTimes()
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) models.TransactionResult {
	t.Helper()
	var result models.TransactionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), rec.Body.String())
	return result
}

func TestCreateTransaction_AdjustsBalance(t *testing.T) {
	tests := []struct {
		name        string
		opening     int64
		body        string
		wantBalance string
	}{
		{
			name:        "income",
			opening:     50,
			body:        `{"amount":100,"category":"salary","type":"INCOME"}`,
			wantBalance: "150",
		},
		{
			name:        "expense",
			opening:     0,
			body:        `{"amount":50,"category":"groceries","type":"EXPENSE","description":"weekly"}`,
			wantBalance: "-50",
		},
		{
			name:        "fractional amount",
			opening:     10,
			body:        `{"amount":2.75,"category":"coffee","type":"EXPENSE","createdAt":"2026-05-01"}`,
			wantBalance: "7.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.expectLedger(tt.opening)

			rec := f.do(http.MethodPost, "/api/transactions", tt.body, f.sessionFor(t, "abc123"))

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			result := decodeResult(t, rec)
			assert.Equal(t, app.MsgTransactionSaved, result.Message)
			assert.Equal(t, tt.wantBalance, result.Balance.String())
			assert.Equal(t, "abc123", result.Transaction.UserID)
			assert.NotEmpty(t, result.Transaction.ID)
		})
	}
}

func TestCreateTransaction_SequenceKeepsBalanceInvariant(t *testing.T) {
	f := newAPIFixture(t)
	f.expectLedger(0)
	cookie := f.sessionFor(t, "abc123")

	var last models.TransactionResult
	for _, body := range []string{
		`{"amount":100,"category":"salary","type":"INCOME"}`,
		`{"amount":30,"category":"rent","type":"EXPENSE"}`,
		`{"amount":5.5,"category":"gift","type":"INCOME"}`,
	} {
		rec := f.do(http.MethodPost, "/api/transactions", body, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)
		last = decodeResult(t, rec)
	}

	assert.Equal(t, "75.5", last.Balance.String())
}

func TestCreateTransaction_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		repoErr    error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "negative amount",
			body:       `{"amount":-5,"category":"x","type":"INCOME"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation error: Amount must be a positive number",
		},
		{
			name:       "fraction of a cent",
			body:       `{"amount":0.001,"category":"x","type":"EXPENSE"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation error: Amount must have at most 2 decimal places",
		},
		{
			name:       "beyond column range",
			body:       `{"amount":10000000000000000000000,"category":"x","type":"INCOME"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation error: Amount is too large",
		},
		{
			name:       "quoted amount",
			body:       `{"amount":"100","category":"x","type":"INCOME"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation error: Amount must be a number",
		},
		{
			name:       "everything missing",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation error: Amount is required, Category is required, Type must be one of INCOME, EXPENSE",
		},
		{
			name:       "invalid JSON",
			body:       `{"amount":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation error: invalid JSON body",
		},
		{
			name:       "unknown user",
			body:       `{"amount":5,"category":"x","type":"INCOME"}`,
			repoErr:    store.ErrNoUserWasFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "storage failure",
			body:       `{"amount":5,"category":"x","type":"INCOME"}`,
			repoErr:    store.ErrCommitingTransaction,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgTransactionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			if tt.repoErr != nil {
				f.transactions.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					Return(models.Transaction{}, decimal.Decimal{}, tt.repoErr)
			}

			rec := f.do(http.MethodPost, "/api/transactions", tt.body, f.sessionFor(t, "abc123"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec).StatusMessage)
		})
	}
}

func TestCreateTransaction_NoIdentity(t *testing.T) {
	f := newAPIFixture(t)

	// called directly, bypassing the session middleware
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(`{"amount":5,"category":"x","type":"INCOME"}`))
	rec := httptest.NewRecorder()
	f.handler.createTransaction(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec).StatusMessage)
}
