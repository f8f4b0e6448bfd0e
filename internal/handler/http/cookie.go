package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-balance-keeper/models"
)

// setSessionCookie stores the signed credential in the auth_token cookie.
// The cookie expires together with the credential.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := h.sessionCookie(token.SignedString)
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.UTC()
		cookie.MaxAge = int(time.Until(token.ExpiresAt.Time).Seconds())
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie tells the browser to drop auth_token. The attributes
// must match the ones the cookie was set with.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	cookie := h.sessionCookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}

func (h *Handler) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}
