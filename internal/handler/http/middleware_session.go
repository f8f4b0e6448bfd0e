package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-balance-keeper/internal/app"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/service"
	"github.com/MKhiriev/go-balance-keeper/internal/utils"
	"github.com/MKhiriev/go-balance-keeper/models"
)

// routeClass tells the session middleware how to treat a request path.
type routeClass int

const (
	// routeExempt paths are outside the API and never checked.
	routeExempt routeClass = iota
	// routePublic paths are API endpoints reachable without a session.
	routePublic
	// routeProtected paths require a valid session credential.
	routeProtected
)

// classifyRoute decides by path alone; the query string is ignored.
func classifyRoute(path string) routeClass {
	switch {
	case !strings.HasPrefix(path, apiPrefix):
		return routeExempt
	case path == loginPath || path == registerPath:
		return routePublic
	default:
		return routeProtected
	}
}

// withSession guards every protected API path.
//
// A request without the auth_token cookie is rejected with 401. A cookie
// that fails verification (bad signature, malformed, expired) is deleted from
// the browser and the request is rejected with 401 carrying the verification
// error. Otherwise the verified identity is attached to the request context
// and the request continues.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if classifyRoute(r.URL.Path) != routeProtected {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		cookie, err := r.Cookie(models.SessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Debug().Str("path", r.URL.Path).Msg("no session cookie")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgNoTokenProvided)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err == nil {
			var userID string
			if userID, err = token.GetUserID(); err == nil {
				ctx = utils.WithIdentity(ctx, models.Identity{UserID: userID})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		log.Warn().Err(err).Str("path", r.URL.Path).Msg("session credential rejected")
		h.clearSessionCookie(w)
		utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorizedPrefix+verificationMessage(err))
	})
}

// verifierErrors are the reasons reported to the client, most specific
// first. Wrapping layers above them are not part of the message.
var verifierErrors = []error{
	service.ErrTokenIsExpired,
	jwt.ErrTokenExpired,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenMalformed,
	jwt.ErrTokenInvalidIssuer,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenInvalidClaims,
}

// verificationMessage reduces a verification error to the verifier's own
// reason, or "Invalid token" when none is recognised.
func verificationMessage(err error) string {
	for _, reason := range verifierErrors {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}
	return app.MsgInvalidToken
}
