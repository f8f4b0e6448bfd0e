package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-balance-keeper/internal/app"
	"github.com/MKhiriev/go-balance-keeper/internal/config"
	"github.com/MKhiriev/go-balance-keeper/internal/service"
	"github.com/MKhiriev/go-balance-keeper/internal/utils"
	"github.com/MKhiriev/go-balance-keeper/models"
)

func Test_classifyRoute(t *testing.T) {
	tests := []struct {
		path string
		want routeClass
	}{
		{"/", routeExempt},
		{"/version", routeExempt},
		{"/pg/Login", routeExempt},
		{"/api", routeExempt},
		{"/api/users/login", routePublic},
		{"/api/users/register", routePublic},
		{"/api/users/login/", routeProtected},
		{"/api/users/logout", routeProtected},
		{"/api/users/abc123", routeProtected},
		{"/api/transactions", routeProtected},
		{"/api/unknown", routeProtected},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyRoute(tt.path))
		})
	}
}

// runSession passes a request through withSession alone and reports whether
// the next handler ran and with which identity.
func runSession(t *testing.T, f *apiFixture, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, bool, models.Identity) {
	t.Helper()
	var (
		reached  bool
		identity models.Identity
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		identity, _ = utils.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.handler.withSession(next).ServeHTTP(rec, req)
	return rec, reached, identity
}

func signedToken(t *testing.T, key string, claims *models.Token) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestWithSession_NoCookie(t *testing.T) {
	f := newAPIFixture(t)

	for _, path := range []string{"/api/transactions", "/api/users/abc123", "/api/users/logout"} {
		t.Run(path, func(t *testing.T) {
			rec, reached, _ := runSession(t, f, path, nil)

			assert.False(t, reached)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.MsgNoTokenProvided, decodeError(t, rec).StatusMessage)
			assert.Nil(t, responseCookie(rec), "nothing to clear")
		})
	}
}

func TestWithSession_EmptyCookieCountsAsMissing(t *testing.T) {
	f := newAPIFixture(t)

	rec, reached, _ := runSession(t, f, "/api/transactions", &http.Cookie{Name: models.SessionCookieName, Value: ""})

	assert.False(t, reached)
	assert.Equal(t, app.MsgNoTokenProvided, decodeError(t, rec).StatusMessage)
}

func TestWithSession_ExemptAndPublicPaths(t *testing.T) {
	f := newAPIFixture(t)

	for _, path := range []string{"/version", "/health", "/", "/api/users/login", "/api/users/register", "/api/users/login?next=/x"} {
		t.Run(path, func(t *testing.T) {
			rec, reached, identity := runSession(t, f, path, nil)

			assert.True(t, reached)
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Empty(t, identity.UserID)
		})
	}
}

func TestWithSession_ValidCredential(t *testing.T) {
	f := newAPIFixture(t)

	rec, reached, identity := runSession(t, f, "/api/users/abc123", f.sessionFor(t, "abc123"))

	require.True(t, reached)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, models.Identity{UserID: "abc123"}, identity)
	assert.Nil(t, responseCookie(rec))
}

func TestWithSession_RejectedCredential(t *testing.T) {
	f := newAPIFixture(t)
	past := time.Now().Add(-time.Hour)

	valid := f.sessionFor(t, "abc123").Value
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	first := "A"
	if parts[2][0] == 'A' {
		first = "B"
	}
	tampered := parts[0] + "." + parts[1] + "." + first + parts[2][1:]

	tests := []struct {
		name       string
		token      string
		wantMsg string
	}{
		{
			name: "expired",
			token: signedToken(t, testSignKey, &models.Token{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    config.DefaultTokenIssuer,
					ExpiresAt: jwt.NewNumericDate(past),
				},
				UserID: "abc123",
			}),
			wantMsg: "Unauthorized: token is expired",
		},
		{
			name: "foreign signing key",
			token: signedToken(t, "someone-else", &models.Token{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    config.DefaultTokenIssuer,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
				UserID: "abc123",
			}),
			wantMsg: "Unauthorized: token signature is invalid",
		},
		{
			name: "foreign issuer",
			token: signedToken(t, testSignKey, &models.Token{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    "someone-else",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
				UserID: "abc123",
			}),
			wantMsg: "Unauthorized: token has invalid issuer",
		},
		{
			name: "no user id",
			token: signedToken(t, testSignKey, &models.Token{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    config.DefaultTokenIssuer,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
			wantMsg: "Unauthorized: Invalid token",
		},
		{name: "tampered signature", token: tampered, wantMsg: "Unauthorized: token signature is invalid"},
		{name: "malformed", token: "not-a-jwt", wantMsg: "Unauthorized: token is malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookie := &http.Cookie{Name: models.SessionCookieName, Value: tt.token}
			rec, reached, _ := runSession(t, f, "/api/transactions", cookie)

			assert.False(t, reached)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec).StatusMessage)
			assertCookieCleared(t, rec)
		})
	}
}

func TestWithSession_RouterRejectsBeforeHandler(t *testing.T) {
	// no repository expectations: reaching a service would fail the test
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/transactions", `{"amount":5,"category":"x","type":"INCOME"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgNoTokenProvided, decodeError(t, rec).StatusMessage)
}

func Test_verificationMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "expired", err: service.ErrTokenIsExpired, want: "token is expired"},
		{
			name: "wrapped malformed",
			err:  fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, fmt.Errorf("error occurred validating and parsing token: %w", jwt.ErrTokenMalformed)),
			want: "token is malformed",
		},
		{name: "wrapped signature", err: fmt.Errorf("invalid token: %w", jwt.ErrTokenSignatureInvalid), want: "token signature is invalid"},
		{name: "unrecognised", err: errors.New("token has no subject"), want: app.MsgInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verificationMessage(tt.err))
		})
	}
}
