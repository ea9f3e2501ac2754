package economy

import (
	"context"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

// BuyItems charges the full catalog price of the batch and adds the items.
// Unknown codes reject the whole purchase.
func (s *service) BuyItems(ctx context.Context, userID string, characterID int64, batch []domain.BatchEntry) (*TradeResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := repository.LockOwnedCharacter(ctx, tx, characterID, userID)
	if err != nil {
		return nil, err
	}
	batch, err = domain.Coalesce(batch)
	if err != nil {
		return nil, err
	}

	catalog, err := tx.GetItemsByCodes(ctx, domain.Codes(batch))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCatalogFailed, err)
	}

	lines := make([]Line, 0, len(batch))
	var total int64
	for _, entry := range batch {
		item, ok := catalog.Lookup(entry.ItemCode)
		if !ok {
			return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, entry.ItemCode)
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		amount := item.Price * int64(entry.Count)
		lines = append(lines, Line{ItemCode: item.Code, Name: item.Name, Count: entry.Count, Amount: amount})
		total += amount
	}

	updated, err := character.Debit(total)
	if err != nil {
		return nil, err
	}

	inventory, err := tx.GetInventoryForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	newInventory, err := domain.AddItems(*inventory, batch, catalog)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, tx, updated, newInventory); err != nil {
		return nil, err
	}

	event.PublishAfterCommit(ctx, s.publisher, event.NewTradeEvent(event.ItemsBought, characterID, eventLines(lines), total, updated.Money))
	logger.FromContext(ctx).Info(LogMsgItemsBought, "character_id", characterID, "entries", len(lines), "total", total)

	return &TradeResult{Lines: lines, Total: total, Balance: updated.Money, Inventory: newInventory}, nil
}
