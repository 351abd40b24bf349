package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/AnglerBot_Go/internal/logger"
)

var errRequestRejected = errors.New("request rejected")

// DecodeAndValidateRequest decodes the JSON body into req and validates it
// with the shared validator. On failure it writes the error response and
// returns a sentinel error so callers can bail out with a bare return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn("Failed to decode request", "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return errRequestRejected
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Request validation failed", "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgValidationFailed,
			Fields: FormatValidationError(err),
		})
		return errRequestRejected
	}

	return nil
}
