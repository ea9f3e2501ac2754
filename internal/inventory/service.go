// Package inventory exposes a character's item stacks and the admin
// operations that add or remove them outside of trading.
package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Service defines inventory operations
type Service interface {
	// ListInventory returns the owner's stacks. NotFound for an unknown
	// character, Forbidden for anyone but the owner.
	ListInventory(ctx context.Context, userID string, characterID int64) ([]domain.Stack, error)
	GrantItems(ctx context.Context, characterID int64, batch []domain.BatchEntry) (*domain.Inventory, error)
	RevokeItems(ctx context.Context, characterID int64, batch []domain.BatchEntry) (*domain.Inventory, error)
}

type service struct {
	repo      repository.Character
	publisher event.Publisher
}

// NewService creates an inventory service. publisher may be nil.
func NewService(repo repository.Character, publisher event.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) ListInventory(ctx context.Context, userID string, characterID int64) ([]domain.Stack, error) {
	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if !character.IsOwnedBy(userID) {
		return nil, fmt.Errorf(ErrMsgNotOwnedFmt, domain.ErrForbidden, characterID)
	}

	inventory, err := s.repo.GetInventory(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if inventory.Stacks == nil {
		return []domain.Stack{}, nil
	}
	return inventory.Stacks, nil
}

func (s *service) GrantItems(ctx context.Context, characterID int64, batch []domain.BatchEntry) (*domain.Inventory, error) {
	batch, err := domain.Coalesce(batch)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, characterID, batch, event.ItemsGranted, func(tx repository.CharacterTx, inv domain.Inventory) (domain.Inventory, error) {
		catalog, err := tx.GetItemsByCodes(ctx, domain.Codes(batch))
		if err != nil {
			return inv, fmt.Errorf(ErrMsgGetCatalogFailed, err)
		}
		return domain.AddItems(inv, batch, catalog)
	})
}

func (s *service) RevokeItems(ctx context.Context, characterID int64, batch []domain.BatchEntry) (*domain.Inventory, error) {
	batch, err := domain.Coalesce(batch)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, characterID, batch, event.ItemsRevoked, func(_ repository.CharacterTx, inv domain.Inventory) (domain.Inventory, error) {
		return domain.RemoveItems(inv, batch)
	})
}

// apply runs change against the locked inventory of characterID in its own transaction
func (s *service) apply(ctx context.Context, characterID int64, batch []domain.BatchEntry, eventType event.Type,
	change func(repository.CharacterTx, domain.Inventory) (domain.Inventory, error)) (*domain.Inventory, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetCharacterForUpdate(ctx, characterID); err != nil {
		return nil, err
	}
	inventory, err := tx.GetInventoryForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	updated, err := change(tx, *inventory)
	if err != nil {
		return nil, err
	}
	if err := tx.UpdateInventory(ctx, updated); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateInventoryFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishAfterCommit(ctx, s.publisher, event.NewInventoryEvent(eventType, characterID, batch))
	msg := LogMsgItemsGranted
	if eventType == event.ItemsRevoked {
		msg = LogMsgItemsRevoked
	}
	logger.FromContext(ctx).Info(msg, "character_id", characterID, "entries", len(batch))

	return &updated, nil
}
