package models

import (
	"errors"
	"time"
)

// LocalSession is the client-side cache of the signed-in user.
type LocalSession struct {
	UserID  string
	Name    string
	Email   string
	Token   string
	SavedAt time.Time
}

// LogoutResult records the outcome of every step of a client logout. The
// cleanup steps always run, so a non-nil ServerErr does not stop the local
// session from being cleared or the user from being sent to the login prompt.
type LogoutResult struct {
	// ServerErr is the error of the best-effort logout call to the server.
	ServerErr error
	// CacheErr is the error of clearing the locally cached session.
	CacheErr error
	// NavigateErr is the error of navigating to the login prompt.
	NavigateErr error
}

// Err joins all recorded errors, or returns nil when every step succeeded.
func (r LogoutResult) Err() error {
	return errors.Join(r.ServerErr, r.CacheErr, r.NavigateErr)
}
