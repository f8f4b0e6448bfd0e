package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("invalid token")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNoIdentity is returned when a protected operation runs without an
	// authenticated user in the request context.
	ErrNoIdentity = errors.New("no authenticated user")

	// ErrUnauthorizedAccessToDifferentUserData is returned when the
	// authenticated user asks for another user's data.
	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to different user's data")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrStorageUnavailable    = errors.New("storage unavailable")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotLoggedIn      = errors.New("not logged in")
)
