package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an account holder and owner of a running balance.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID v7 when
	// generated by the server).
	UserID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Password carries the plain-text password on registration and login
	// requests only. It is never persisted and never returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// Balance is the signed accumulator of all INCOME minus all EXPENSE
	// amounts recorded for this user.
	Balance decimal.Decimal `json:"balance"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public subset of user fields.
func (u User) Profile() UserProfile {
	return UserProfile{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

// UserProfile is the public view of a user returned by the API.
type UserProfile struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
