// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-balance-keeper/internal/app"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/service"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/internal/utils"
	"github.com/MKhiriev/go-balance-keeper/internal/validators"
)

// statusMessage is the public rendering of a service error.
type statusMessage struct {
	status  int
	message string
}

// errorStatusMap translates deliberately raised service and store errors.
// Anything not listed here is answered with 500 and the handler's fallback
// message.
var errorStatusMap = map[error]statusMessage{
	service.ErrInvalidDataProvided:                   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:                         {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrNoIdentity:                            {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrUnauthorizedAccessToDifferentUserData: {http.StatusForbidden, app.MsgForbiddenOtherUser},
	validators.ErrInvalidUserID:                      {http.StatusBadRequest, app.MsgInvalidUserID},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrNoUserWasFound:     {http.StatusNotFound, app.MsgUserNotFound},
}

// resolveError returns the status code and public message for err.
// Validation errors keep their own "Validation error: ..." text.
func resolveError(err error, fallback string) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}

	return http.StatusInternalServerError, fallback
}

// writeServiceError logs err and writes the resolved error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := resolveError(err, fallback)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(message)

	utils.WriteError(w, status, message)
}

// writeInvalidJSON answers a request whose body could not be decoded.
func writeInvalidJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Warn().Err(err).Msg(app.MsgInvalidJSON)
	utils.WriteError(w, http.StatusBadRequest, (&validators.ValidationError{Messages: []string{app.MsgInvalidJSON}}).Error())
}
