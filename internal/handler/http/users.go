package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-balance-keeper/internal/app"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/utils"
	"github.com/MKhiriev/go-balance-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req.User())
	if err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	h.startSession(w, r, user, app.MsgRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req.User())
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	h.startSession(w, r, user, app.MsgLoggedIn, http.StatusOK)
}

// startSession issues a credential for user, sets the session cookie and
// writes the public profile.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User, message string, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, app.MsgSessionFailed)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.UserID).Msg(message)

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.AuthResponse{Message: message, User: user.Profile()}, status)
}

// logout clears the session cookie. The route is protected, so only a
// request with a valid session gets here.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) getUserSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.UserService.GetUserSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, app.MsgUserDataFailed)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
