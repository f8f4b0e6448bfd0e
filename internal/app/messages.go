// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages of the ledger API.
//
// Every statusMessage and message string that reaches an API client is
// declared here, so the server handlers and the client agree on wording.
package app

// Session messages.
const (
	// MsgNoTokenProvided rejects a protected request without auth_token.
	MsgNoTokenProvided = "Unauthorized: No token provided"

	// MsgUnauthorizedPrefix precedes the verification error of a rejected
	// session credential.
	MsgUnauthorizedPrefix = "Unauthorized: "

	// MsgInvalidToken is used when verification fails without a message.
	MsgInvalidToken = "Invalid token"

	// MsgUnauthorized is returned by a protected operation that runs
	// without an authenticated user.
	MsgUnauthorized = "Unauthorized"
)

// User messages.
const (
	MsgRegistered         = "Registration successful"
	MsgLoggedIn           = "Login successful"
	MsgLoggedOut          = "Logout successful"
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailAlreadyExists = "Email is already registered"
	MsgForbiddenOtherUser = "Forbidden: You can only access your own data"
	MsgInvalidUserID      = "Invalid user ID format"
	MsgUserNotFound       = "User not found"

	MsgRegistrationFailed = "Failed to register user"
	MsgLoginFailed        = "Failed to log in"
	MsgSessionFailed      = "Failed to create session"
	MsgUserDataFailed     = "Failed to fetch user data"
)

// Transaction messages.
const (
	MsgTransactionSaved  = "Transaction saved and balance updated"
	MsgTransactionFailed = "Failed to save transaction"
)

// Request messages.
const (
	// MsgInvalidDataProvided is returned for input rejected outside the
	// field validators.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidJSON is the validation message for an undecodable body.
	MsgInvalidJSON = "invalid JSON body"
)
