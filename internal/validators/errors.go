package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation error")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidUserID   = errors.New("invalid user ID format")
)

// ValidationError lists every failed validation rule of one input.
type ValidationError struct {
	Messages []string
}

// Error renders the messages as "Validation error: m1, m2".
func (e *ValidationError) Error() string {
	return "Validation error: " + strings.Join(e.Messages, ", ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// collector accumulates messages and yields nil when nothing failed.
type collector struct {
	messages []string
}

func (c *collector) add(message string) {
	c.messages = append(c.messages, message)
}

func (c *collector) err() error {
	if len(c.messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: c.messages}
}
