package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the name of the cookie carrying the session credential.
const SessionCookieName = "auth_token"

// Token is a session credential. It doubles as the JWT claim set:
// the registered claims (iss, sub, iat, exp) plus a userId claim.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) that is stored in the auth_token cookie.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject the credential was issued for.
	UserID string `json:"userId"`
}

// GetUserID returns the userId claim, falling back to the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	if t.UserID != "" {
		return t.UserID, nil
	}

	if t.Subject == "" {
		return "", errors.New("token has no subject")
	}

	return t.Subject, nil
}

// Identity returns the request identity carried by the token.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
