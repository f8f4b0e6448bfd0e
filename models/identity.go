package models

// Identity is the authenticated subject of a single request. It is attached
// to the request context by the session middleware and lives exactly as long
// as the request.
type Identity struct {
	UserID string
}
