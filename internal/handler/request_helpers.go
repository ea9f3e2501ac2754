package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Armory_Go/internal/auth"
	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// BatchEntryRequest is one {itemcode, count} line of a buy, sell, grant or revoke body
type BatchEntryRequest struct {
	ItemCode int `json:"itemcode" validate:"gt=0,lte=2147483647"`
	Count    int `json:"count" validate:"gt=0,lte=10000"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req EquipRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}

// decodeBatch reads a JSON array of batch entries and validates every line.
// The response has been written when an error is returned.
func decodeBatch(r *http.Request, w http.ResponseWriter, actionName string) ([]domain.BatchEntry, error) {
	var lines []BatchEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&lines); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return nil, err
	}
	if len(lines) == 0 || len(lines) > domain.MaxBatchEntries {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidInput)
		return nil, domain.ErrInvalidInput
	}

	batch := make([]domain.BatchEntry, len(lines))
	for i := range lines {
		if err := GetValidator().ValidateStruct(&lines[i]); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Message: ErrMsgInvalidRequestSummary,
				Fields:  FormatValidationError(err),
			})
			return nil, err
		}
		batch[i] = domain.BatchEntry{ItemCode: lines[i].ItemCode, Count: lines[i].Count}
	}
	return batch, nil
}

// characterIDParam parses the {characterID} URL parameter.
// On false the response has already been written.
func characterIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, ParamCharacterID), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
		return 0, false
	}
	return id, true
}

// itemCodeParam parses the {itemCode} URL parameter.
// On false the response has already been written.
func itemCodeParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	code, err := strconv.Atoi(chi.URLParam(r, ParamItemCode))
	if err != nil || code <= 0 || code > domain.MaxItemCode {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemCode)
		return 0, false
	}
	return code, true
}

// requireIdentity returns the authenticated caller set by the auth middleware.
// On false a 401 has already been written.
func requireIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgTokenMissing)
		return auth.Identity{}, false
	}
	return id, true
}

// viewerID is the caller's user id, or "" for an anonymous request
func viewerID(r *http.Request) string {
	id, _ := auth.IdentityFromContext(r.Context())
	return id.UserID
}
