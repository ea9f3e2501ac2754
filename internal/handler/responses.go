package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// respondMessage sends {message} with the given status
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, SuccessResponse{Message: message})
}

// respondData sends {message, data} with the given status
func respondData(w http.ResponseWriter, status int, message string, data interface{}) {
	respondJSON(w, status, DataResponse{Message: message, Data: data})
}

// respondServiceError logs err and writes the mapped status and user message.
// Unmapped errors become a 500 with a generic message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message that is safe to show to the caller.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError

	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInput
	case errors.Is(err, domain.ErrInvalidItemType):
		return http.StatusBadRequest, ErrMsgInvalidItemType
	case errors.Is(err, domain.ErrInvalidStat):
		return http.StatusBadRequest, ErrMsgInvalidStat
	case errors.Is(err, domain.ErrNotEquippable):
		return http.StatusBadRequest, ErrMsgNotEquippable
	case errors.Is(err, domain.ErrSlotFull):
		return http.StatusBadRequest, ErrMsgSlotFull
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusBadRequest, ErrMsgNotInInventory
	case errors.Is(err, domain.ErrNotEquipped):
		return http.StatusBadRequest, ErrMsgNotEquipped
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientQuantity
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFunds

	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, ErrMsgTokenExpired
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, ErrMsgTokenInvalid
	case errors.Is(err, domain.ErrTokenMissing):
		return http.StatusUnauthorized, ErrMsgTokenMissing
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentials

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbidden

	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFound

	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict, ErrMsgDuplicateName
	case errors.Is(err, domain.ErrDuplicateLoginID):
		return http.StatusConflict, ErrMsgDuplicateLoginID
	case errors.Is(err, domain.ErrDuplicateItemCode):
		return http.StatusConflict, ErrMsgDuplicateItemCode

	case errors.Is(err, domain.ErrTxTimeout):
		return http.StatusServiceUnavailable, ErrMsgRequestTimedOut
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// RespondError writes a {message} error body. Used by middleware outside this package.
func RespondError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// RespondServiceError maps err like the handlers do
func RespondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	respondServiceError(w, r, opName, err)
}
