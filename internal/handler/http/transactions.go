package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-balance-keeper/internal/app"
	"github.com/MKhiriev/go-balance-keeper/internal/utils"
	"github.com/MKhiriev/go-balance-keeper/internal/validators"
	"github.com/MKhiriev/go-balance-keeper/models"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var input models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if errors.Is(err, models.ErrAmountNotNumber) {
			writeServiceError(w, r, &validators.ValidationError{Messages: []string{validators.MsgAmountNotNumber}}, app.MsgTransactionFailed)
			return
		}
		writeInvalidJSON(w, r, err)
		return
	}

	result, err := h.services.TransactionService.CreateTransaction(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, app.MsgTransactionFailed)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}
