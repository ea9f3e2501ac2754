package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Armory_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInput},
		{"not equippable", domain.ErrNotEquippable, http.StatusBadRequest, ErrMsgNotEquippable},
		{"slot full", domain.ErrSlotFull, http.StatusBadRequest, ErrMsgSlotFull},
		{"not in inventory", domain.ErrNotInInventory, http.StatusBadRequest, ErrMsgNotInInventory},
		{"not equipped", domain.ErrNotEquipped, http.StatusBadRequest, ErrMsgNotEquipped},
		{"insufficient quantity", domain.ErrInsufficientQuantity, http.StatusBadRequest, ErrMsgInsufficientQuantity},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgInsufficientFunds},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized, ErrMsgTokenExpired},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized, ErrMsgTokenInvalid},
		{"token missing", domain.ErrTokenMissing, http.StatusUnauthorized, ErrMsgTokenMissing},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, ErrMsgInvalidCredentials},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, ErrMsgForbidden},
		{"character not found", domain.ErrCharacterNotFound, http.StatusNotFound, ErrMsgCharacterNotFound},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFound},
		{"duplicate name", domain.ErrDuplicateName, http.StatusConflict, ErrMsgDuplicateName},
		{"duplicate login id", domain.ErrDuplicateLoginID, http.StatusConflict, ErrMsgDuplicateLoginID},
		{"duplicate item code", domain.ErrDuplicateItemCode, http.StatusConflict, ErrMsgDuplicateItemCode},
		{"wrapped", fmt.Errorf("buy: %w", fmt.Errorf("%w: balance 1", domain.ErrInsufficientFunds)), http.StatusBadRequest, ErrMsgInsufficientFunds},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestRespondServiceError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respondServiceError(rec, req, "Test", errors.New("relation \"characters\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, ContentTypeJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, ErrMsgGenericServerError, errorMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestRespondData(t *testing.T) {
	rec := httptest.NewRecorder()

	respondData(rec, http.StatusCreated, "done", map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"done","data":{"n":1}}`, rec.Body.String())
}
