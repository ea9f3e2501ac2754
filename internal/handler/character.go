package handler

import (
	"net/http"

	"github.com/osse101/Armory_Go/internal/character"
)

// CreateCharacterRequest is the character creation body.
// Length is checked after normalisation by the service.
type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required"`
}

// EarnMoneyResponse is returned by the earn-money endpoint
type EarnMoneyResponse struct {
	Message     string `json:"message"`
	EarnedMoney int64  `json:"earnedMoney"`
}

// HandleCreateCharacter creates a character for the caller
// @Summary Create character
// @Tags characters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCharacterRequest true "Character"
// @Success 201 {object} DataResponse{data=character.Created}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters [post]
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}

		created, err := svc.CreateCharacter(r.Context(), id.UserID, req.Name)
		if err != nil {
			respondServiceError(w, r, "Create character", err)
			return
		}

		respondData(w, http.StatusCreated, MsgCharacterCreated, created)
	}
}

// HandleGetCharacter returns the character summary. Money is included only
// for the owner.
// @Summary Character summary
// @Tags characters
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} DataResponse{data=domain.CharacterSummary}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID} [get]
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		summary, err := svc.GetCharacterSummary(r.Context(), characterID, viewerID(r))
		if err != nil {
			respondServiceError(w, r, "Get character", err)
			return
		}

		respondData(w, http.StatusOK, MsgCharacterFound, summary)
	}
}

// HandleDeleteCharacter deletes one of the caller's characters
// @Summary Delete character
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Param characterID path int true "Character ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID} [delete]
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteCharacter(r.Context(), id.UserID, characterID); err != nil {
			respondServiceError(w, r, "Delete character", err)
			return
		}

		respondMessage(w, http.StatusOK, MsgCharacterDeleted)
	}
}

// HandleEarnMoney credits the fixed reward to the caller's character
// @Summary Earn money
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Param characterID path int true "Character ID"
// @Success 200 {object} EarnMoneyResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/earn-money [post]
func HandleEarnMoney(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		res, err := svc.EarnMoney(r.Context(), id.UserID, characterID)
		if err != nil {
			respondServiceError(w, r, "Earn money", err)
			return
		}

		respondJSON(w, http.StatusOK, EarnMoneyResponse{
			Message:     MsgMoneyEarned,
			EarnedMoney: res.Earned,
		})
	}
}
