// Package economy trades items for money: buying from the catalog and
// selling back at the resale rate.
package economy

import (
	"context"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Line is one item of a completed trade
type Line struct {
	ItemCode int    `json:"itemCode"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Amount   int64  `json:"amount"`
}

// TradeResult is the committed outcome of a buy or sell
type TradeResult struct {
	Lines     []Line           `json:"items"`
	Total     int64            `json:"total"`
	Balance   int64            `json:"balance"`
	Inventory domain.Inventory `json:"inventory"`
}

// CatalogReader lists catalog items for price listings
type CatalogReader interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// Service defines economy operations
type Service interface {
	BuyItems(ctx context.Context, userID string, characterID int64, batch []domain.BatchEntry) (*TradeResult, error)
	SellItems(ctx context.Context, userID string, characterID int64, batch []domain.BatchEntry) (*TradeResult, error)
	GetPrices(ctx context.Context) ([]domain.ItemPrice, error)
}

type service struct {
	repo      repository.Character
	catalog   CatalogReader
	publisher event.Publisher
}

// NewService creates an economy service. publisher may be nil.
func NewService(repo repository.Character, catalog CatalogReader, publisher event.Publisher) Service {
	return &service{repo: repo, catalog: catalog, publisher: publisher}
}

// GetPrices lists the buy price and single-unit resale price of every catalog item
func (s *service) GetPrices(ctx context.Context) ([]domain.ItemPrice, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	prices := make([]domain.ItemPrice, len(items))
	for i, item := range items {
		prices[i] = domain.ItemPrice{
			Code:      item.Code,
			Name:      item.Name,
			Type:      item.Type,
			BuyPrice:  item.Price,
			SellPrice: item.ResalePrice(1),
		}
	}
	return prices, nil
}

func (s *service) commit(ctx context.Context, tx repository.CharacterTx, c domain.Character, inv domain.Inventory) error {
	if err := tx.UpdateInventory(ctx, inv); err != nil {
		return fmt.Errorf(ErrMsgUpdateInventoryFailed, err)
	}
	if err := tx.UpdateCharacter(ctx, c); err != nil {
		return fmt.Errorf(ErrMsgUpdateCharacterFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

func eventLines(lines []Line) []event.TradeLineV1 {
	out := make([]event.TradeLineV1, len(lines))
	for i, l := range lines {
		out[i] = event.TradeLineV1{ItemCode: l.ItemCode, ItemName: l.Name, Count: l.Count, Amount: l.Amount}
	}
	return out
}
