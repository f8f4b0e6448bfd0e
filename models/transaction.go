package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts and balances travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType is the direction of a transaction relative to the owner's
// balance.
type TransactionType string

const (
	// Income increases the owner's balance by the transaction amount.
	Income TransactionType = "INCOME"
	// Expense decreases the owner's balance by the transaction amount.
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether t is one of the supported transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is an immutable income or expense record owned by exactly one
// user.
type Transaction struct {
	// ID is the server-assigned identifier (UUID v7).
	ID string `json:"id"`

	// UserID references the owning user.
	UserID string `json:"userId"`

	// Amount is always strictly positive; Type decides the sign applied to
	// the balance.
	Amount decimal.Decimal `json:"amount"`

	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	Type        TransactionType `json:"type"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}

// BalanceDelta returns the signed change this transaction applies to the
// owner's balance: +Amount for INCOME and -Amount for EXPENSE.
func (t Transaction) BalanceDelta() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionInput is the raw, not yet validated body of a transaction
// creation request. Pointer fields distinguish absent values from zero values.
type TransactionInput struct {
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description,omitempty"`
	Type        *TransactionType `json:"type"`
	CreatedAt   *string          `json:"createdAt,omitempty"`
}

// ErrAmountNotNumber is returned when "amount" is present but is not a JSON
// number, e.g. the quoted string "100".
var ErrAmountNotNumber = errors.New("amount is not a JSON number")

// UnmarshalJSON accepts only a JSON number or null for "amount".
func (in *TransactionInput) UnmarshalJSON(b []byte) error {
	type plain TransactionInput
	aux := struct {
		Amount json.RawMessage `json:"amount"`
		*plain
	}{plain: (*plain)(in)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	in.Amount = nil
	raw := bytes.TrimSpace(aux.Amount)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		return ErrAmountNotNumber
	}

	amount, err := decimal.NewFromString(string(raw))
	if err != nil {
		return err
	}
	in.Amount = &amount
	return nil
}

// TransactionResult is returned after a transaction was recorded and the
// owner's balance was adjusted.
type TransactionResult struct {
	Message     string          `json:"message"`
	Transaction Transaction     `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}
