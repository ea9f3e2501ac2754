package handler

import (
	"net/http"

	"github.com/osse101/Armory_Go/internal/catalog"
	"github.com/osse101/Armory_Go/internal/domain"
)

// CreateItemRequest defines a new catalog item
type CreateItemRequest struct {
	ItemCode int            `json:"itemCode" validate:"required,gt=0,lte=2147483647"`
	Name     string         `json:"name" validate:"required,max=50"`
	ItemType string         `json:"itemType" validate:"required,itemtype"`
	Price    int64          `json:"price" validate:"gte=0,lte=1000000000"`
	Stats    map[string]int `json:"stats" validate:"omitempty,statkeys"`
}

// UpdateItemRequest replaces an item's stats and optionally its name
type UpdateItemRequest struct {
	Name  string         `json:"name" validate:"max=50"`
	Stats map[string]int `json:"stats" validate:"omitempty,statkeys"`
}

// ItemListEntry is one row of the catalog listing
type ItemListEntry struct {
	ItemCode int             `json:"itemCode"`
	Name     string          `json:"name"`
	ItemType domain.ItemType `json:"itemType"`
	Price    int64           `json:"price"`
}

// HandleListItems lists the catalog without stats
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {object} DataResponse{data=[]ItemListEntry}
// @Router /api/v1/items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}

		entries := make([]ItemListEntry, len(items))
		for i, item := range items {
			entries[i] = ItemListEntry{
				ItemCode: item.Code,
				Name:     item.Name,
				ItemType: item.Type,
				Price:    item.Price,
			}
		}
		respondData(w, http.StatusOK, MsgItemsListed, entries)
	}
}

// HandleGetItem returns one catalog item with stats
// @Summary Item detail
// @Tags items
// @Produce json
// @Param itemCode path int true "Item code"
// @Success 200 {object} DataResponse{data=domain.Item}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemCode} [get]
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := itemCodeParam(w, r)
		if !ok {
			return
		}

		item, err := svc.GetItem(r.Context(), code)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}

		respondData(w, http.StatusOK, MsgItemFound, item)
	}
}

// HandleCreateItem adds an item to the catalog. Admin only.
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateItemRequest true "Item"
// @Success 201 {object} DataResponse{data=domain.Item}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/items [post]
func HandleCreateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		itemType, err := domain.ParseItemType(req.ItemType)
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}
		stats, err := domain.ParseStats(req.Stats)
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}

		item, err := svc.CreateItem(r.Context(), domain.Item{
			Code:  req.ItemCode,
			Name:  req.Name,
			Type:  itemType,
			Stats: stats,
			Price: req.Price,
		})
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}

		respondData(w, http.StatusCreated, MsgItemCreated, item)
	}
}

// HandleUpdateItem replaces the stats (and name, if given) of an item. Admin only.
// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param itemCode path int true "Item code"
// @Param request body UpdateItemRequest true "Changes"
// @Success 200 {object} DataResponse{data=domain.Item}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemCode} [put]
func HandleUpdateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := itemCodeParam(w, r)
		if !ok {
			return
		}

		var req UpdateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
			return
		}
		stats, err := domain.ParseStats(req.Stats)
		if err != nil {
			respondServiceError(w, r, "Update item", err)
			return
		}

		item, err := svc.UpdateItem(r.Context(), code, req.Name, stats)
		if err != nil {
			respondServiceError(w, r, "Update item", err)
			return
		}

		respondData(w, http.StatusOK, MsgItemUpdated, item)
	}
}

// HandleDeleteItem removes an item from the catalog. Admin only.
// Existing inventory stacks keep their snapshots.
// @Summary Delete item
// @Tags items
// @Produce json
// @Security ApiKeyAuth
// @Param itemCode path int true "Item code"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemCode} [delete]
func HandleDeleteItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := itemCodeParam(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteItem(r.Context(), code); err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}

		respondMessage(w, http.StatusOK, MsgItemDeleted)
	}
}
