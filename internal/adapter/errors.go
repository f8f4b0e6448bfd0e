package adapter

import "errors"

// Sentinels for non-2xx responses. The wrapped message is the server's
// statusMessage.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrNoSessionCookie = errors.New("server response carries no session cookie")
)
