package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-balance-keeper/models"
)

// Field name constants for credential validation.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const minPasswordLength = 6

const (
	MsgNameRequired    = "Name is required"
	MsgEmailInvalid    = "Email must be a valid address"
	MsgPasswordTooWeak = "Password must be at least 6 characters"
	MsgPasswordMissing = "Password is required"
)

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateUserID checks the format of a user identifier taken from a URL.
func ValidateUserID(userID string) error {
	if !userIDPattern.MatchString(userID) {
		return ErrInvalidUserID
	}
	return nil
}

// UserValidator validates registration and login payloads. Registration
// validates every field; login passes FieldEmail and FieldPassword only, in
// which case the password is only required to be present.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	registration := len(fields) == 0
	if registration {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	var c collector
	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				c.add(MsgNameRequired)
			}
		case FieldEmail:
			if _, err := mail.ParseAddress(user.Email); err != nil || strings.ContainsAny(user.Email, "<> ") {
				c.add(MsgEmailInvalid)
			}
		case FieldPassword:
			switch {
			case user.Password == "":
				c.add(MsgPasswordMissing)
			case registration && len(user.Password) < minPasswordLength:
				c.add(MsgPasswordTooWeak)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return c.err()
}
