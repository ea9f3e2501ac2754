package economy

import (
	"context"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

// SellItems removes the batch from the inventory and credits the resale
// value at the current catalog price. Any failing entry aborts the whole sale.
func (s *service) SellItems(ctx context.Context, userID string, characterID int64, batch []domain.BatchEntry) (*TradeResult, error) {
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

	inventory, err := tx.GetInventoryForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	catalog, err := tx.GetItemsByCodes(ctx, domain.Codes(batch))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCatalogFailed, err)
	}

	lines := make([]Line, 0, len(batch))
	var total int64
	for _, entry := range batch {
		idx, stack := inventory.FindStack(entry.ItemCode)
		if idx == -1 {
			return nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, domain.ErrNotInInventory, entry.ItemCode)
		}
		item, ok := catalog.Lookup(entry.ItemCode)
		if !ok {
			return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, entry.ItemCode)
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if stack.Count < entry.Count {
			return nil, fmt.Errorf(ErrMsgInsufficientStockFmt, domain.ErrInsufficientQuantity, entry.ItemCode, stack.Count, entry.Count)
		}
		amount := item.ResalePrice(entry.Count)
		lines = append(lines, Line{ItemCode: item.Code, Name: item.Name, Count: entry.Count, Amount: amount})
		total += amount
	}

	newInventory, err := domain.RemoveItems(*inventory, batch)
	if err != nil {
		return nil, err
	}
	updated, err := character.Credit(total)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, tx, updated, newInventory); err != nil {
		return nil, err
	}

	event.PublishAfterCommit(ctx, s.publisher, event.NewTradeEvent(event.ItemsSold, characterID, eventLines(lines), total, updated.Money))
	logger.FromContext(ctx).Info(LogMsgItemsSold, "character_id", characterID, "entries", len(lines), "total", total)

	return &TradeResult{Lines: lines, Total: total, Balance: updated.Money, Inventory: newInventory}, nil
}
