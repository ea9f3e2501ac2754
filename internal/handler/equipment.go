package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Armory_Go/internal/equipment"
)

// EquipRequest names the item to equip or unequip
type EquipRequest struct {
	ItemCode int `json:"itemCode" validate:"required,gt=0,lte=2147483647"`
}

// HandleEquipItem moves one unit from inventory into an equipment slot
// @Summary Equip item
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param characterID path int true "Character ID"
// @Param request body EquipRequest true "Item"
// @Success 200 {object} DataResponse{data=equipment.Result}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/equip-item [post]
func HandleEquipItem(svc equipment.Service) http.HandlerFunc {
	return handleEquipment(svc.EquipItem, "Equip item", MsgItemEquipped)
}

// HandleUnequipItem moves an equipped item back into the inventory
// @Summary Unequip item
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param characterID path int true "Character ID"
// @Param request body EquipRequest true "Item"
// @Success 200 {object} DataResponse{data=equipment.Result}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/unequip-item [post]
func HandleUnequipItem(svc equipment.Service) http.HandlerFunc {
	return handleEquipment(svc.UnequipItem, "Unequip item", MsgItemUnequipped)
}

type equipmentAction func(ctx context.Context, userID string, characterID int64, itemCode int) (*equipment.Result, error)

func handleEquipment(action equipmentAction, opName, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		res, err := action(r.Context(), id.UserID, characterID, req.ItemCode)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondData(w, http.StatusOK, successMsg, res)
	}
}

// HandleListEquipped lists the items a character is wearing. Public.
// @Summary Equipped items
// @Tags equipment
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} DataResponse{data=[]domain.Item}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/equipped-items [get]
func HandleListEquipped(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		items, err := svc.ListEquipped(r.Context(), characterID)
		if err != nil {
			respondServiceError(w, r, "List equipped", err)
			return
		}

		respondData(w, http.StatusOK, MsgEquippedListed, items)
	}
}
