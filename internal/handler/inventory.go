package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/inventory"
)

// HandleListInventory lists the caller's stacks for one character
// @Summary Character inventory
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param characterID path int true "Character ID"
// @Success 200 {object} DataResponse{data=[]domain.Stack}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/inventory [get]
func HandleListInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		stacks, err := svc.ListInventory(r.Context(), id.UserID, characterID)
		if err != nil {
			respondServiceError(w, r, "List inventory", err)
			return
		}

		respondData(w, http.StatusOK, MsgInventoryListed, stacks)
	}
}

// HandleGrantItems adds items to any character's inventory. Admin only.
// @Summary Grant items
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param characterID path int true "Character ID"
// @Param request body []BatchEntryRequest true "Items"
// @Success 200 {object} DataResponse{data=domain.Inventory}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/characters/{characterID}/inventory/grant [post]
func HandleGrantItems(svc inventory.Service) http.HandlerFunc {
	return handleAdminInventory(svc.GrantItems, "Grant items", MsgItemsGranted)
}

// HandleRevokeItems removes items from any character's inventory. Admin only.
// @Summary Revoke items
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param characterID path int true "Character ID"
// @Param request body []BatchEntryRequest true "Items"
// @Success 200 {object} DataResponse{data=domain.Inventory}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/characters/{characterID}/inventory/revoke [post]
func HandleRevokeItems(svc inventory.Service) http.HandlerFunc {
	return handleAdminInventory(svc.RevokeItems, "Revoke items", MsgItemsRevoked)
}

type inventoryAction func(ctx context.Context, characterID int64, batch []domain.BatchEntry) (*domain.Inventory, error)

func handleAdminInventory(action inventoryAction, opName, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}
		batch, err := decodeBatch(r, w, opName)
		if err != nil {
			return
		}

		inv, err := action(r.Context(), characterID, batch)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondData(w, http.StatusOK, successMsg, inv)
	}
}
