// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the balance keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) that carries the session credential
// in the auth_token cookie, the same way a browser would.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-balance-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the server.
type ServerAdapter interface {
	// SetToken stores the session credential attached to every subsequent
	// protected request. An empty token means signed out.
	SetToken(token string)

	// Token returns the credential currently held, or "".
	Token() string

	// Register creates an account. On success the credential issued by the
	// server is stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)

	// Login authenticates with e-mail and password. On success the credential
	// issued by the server is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.UserProfile, error)

	// Logout asks the server to clear the session cookie. It does not touch
	// the token held by the adapter.
	Logout(ctx context.Context) error

	// GetUserSummary fetches profile, balance, totals and transactions of userID.
	GetUserSummary(ctx context.Context, userID string) (models.UserSummary, error)

	// CreateTransaction records a transaction for the signed-in user.
	CreateTransaction(ctx context.Context, input models.TransactionInput) (models.TransactionResult, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
