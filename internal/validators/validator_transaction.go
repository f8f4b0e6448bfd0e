package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-balance-keeper/models"
)

// Field name constants for transaction input validation.
const (
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldType      = "type"
	FieldCreatedAt = "createdAt"
)

// Messages reported for invalid transaction input.
const (
	MsgAmountRequired   = "Amount is required"
	MsgAmountPositive   = "Amount must be a positive number"
	MsgAmountNotNumber  = "Amount must be a number"
	MsgAmountPrecision  = "Amount must have at most 2 decimal places"
	MsgAmountTooLarge   = "Amount is too large"
	MsgCategoryRequired = "Category is required"
	MsgTypeInvalid      = "Type must be one of INCOME, EXPENSE"
	MsgCreatedAtInvalid = "CreatedAt must be an RFC 3339 date"
)

// Amounts are stored as NUMERIC(24,2).
const amountScale = 2

var maxAmount = decimal.New(1, 22)

var transactionFields = []string{FieldAmount, FieldCategory, FieldType, FieldCreatedAt}

type TransactionValidator struct {
}

func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

// Validate checks a models.TransactionInput. The amount must be strictly
// positive for both INCOME and EXPENSE; the type alone decides the sign.
func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransactionInput:
		return v.validateInput(value, fields...)
	case *models.TransactionInput:
		if value == nil {
			return &ValidationError{Messages: []string{MsgAmountRequired, MsgCategoryRequired, MsgTypeInvalid}}
		}
		return v.validateInput(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *TransactionValidator) validateInput(input models.TransactionInput, fields ...string) error {
	if len(fields) == 0 {
		fields = transactionFields
	}

	var c collector
	for _, field := range fields {
		switch field {
		case FieldAmount:
			switch {
			case input.Amount == nil:
				c.add(MsgAmountRequired)
			case !input.Amount.IsPositive():
				c.add(MsgAmountPositive)
			case !input.Amount.Equal(input.Amount.Truncate(amountScale)):
				c.add(MsgAmountPrecision)
			case input.Amount.GreaterThanOrEqual(maxAmount):
				c.add(MsgAmountTooLarge)
			}
		case FieldCategory:
			if input.Category == nil || strings.TrimSpace(*input.Category) == "" {
				c.add(MsgCategoryRequired)
			}
		case FieldType:
			if input.Type == nil || !input.Type.IsValid() {
				c.add(MsgTypeInvalid)
			}
		case FieldCreatedAt:
			if input.CreatedAt != nil {
				if _, err := ParseCreatedAt(*input.CreatedAt); err != nil {
					c.add(MsgCreatedAtInvalid)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return c.err()
}

// ParseCreatedAt parses a client-supplied creation time. RFC 3339 with and
// without fractional seconds is accepted, as is a plain date.
func ParseCreatedAt(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid createdAt %q", s)
}
