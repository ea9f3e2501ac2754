package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/economy"
)

// HandleBuyItems buys a batch of catalog items for the caller's character.
// The whole batch succeeds or nothing changes.
// @Summary Buy items
// @Tags economy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param characterID path int true "Character ID"
// @Param request body []BatchEntryRequest true "Items to buy"
// @Success 200 {object} DataResponse{data=economy.TradeResult}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/buy [post]
func HandleBuyItems(svc economy.Service) http.HandlerFunc {
	return handleTrade(svc.BuyItems, "Buy items", MsgItemsBought)
}

// HandleSellItems sells a batch of inventory items at the resale rate
// @Summary Sell items
// @Tags economy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param characterID path int true "Character ID"
// @Param request body []BatchEntryRequest true "Items to sell"
// @Success 200 {object} DataResponse{data=economy.TradeResult}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/characters/{characterID}/sell [post]
func HandleSellItems(svc economy.Service) http.HandlerFunc {
	return handleTrade(svc.SellItems, "Sell items", MsgItemsSold)
}

type tradeAction func(ctx context.Context, userID string, characterID int64, batch []domain.BatchEntry) (*economy.TradeResult, error)

func handleTrade(action tradeAction, opName, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}
		batch, err := decodeBatch(r, w, opName)
		if err != nil {
			return
		}

		res, err := action(r.Context(), id.UserID, characterID, batch)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondData(w, http.StatusOK, successMsg, res)
	}
}

// HandleGetPrices lists buy and sell prices for every catalog item
// @Summary Item prices
// @Tags economy
// @Produce json
// @Success 200 {object} DataResponse{data=[]domain.ItemPrice}
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/prices [get]
func HandleGetPrices(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, err := svc.GetPrices(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get prices", err)
			return
		}

		respondData(w, http.StatusOK, MsgPricesListed, prices)
	}
}
