// Package equipment moves items between a character's inventory and its
// equipped set, keeping stats in step.
package equipment

import (
	"context"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Result is the committed state after an equip or unequip
type Result struct {
	Character domain.Character `json:"character"`
	Equipment domain.Equipment `json:"equipment"`
	Inventory domain.Inventory `json:"inventory"`
}

// Service defines equipment operations
type Service interface {
	EquipItem(ctx context.Context, userID string, characterID int64, itemCode int) (*Result, error)
	UnequipItem(ctx context.Context, userID string, characterID int64, itemCode int) (*Result, error)
	// ListEquipped is public; it fails only for an unknown character
	ListEquipped(ctx context.Context, characterID int64) ([]domain.Item, error)
}

type service struct {
	repo      repository.Character
	publisher event.Publisher
}

// NewService creates an equipment service. publisher may be nil.
func NewService(repo repository.Character, publisher event.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) EquipItem(ctx context.Context, userID string, characterID int64, itemCode int) (*Result, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := repository.LockOwnedCharacter(ctx, tx, characterID, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := tx.GetItemsByCodes(ctx, []int{itemCode})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCatalogFailed, err)
	}
	item, ok := catalog.Lookup(itemCode)
	if !ok {
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, itemCode)
	}
	if !item.Type.Equippable() {
		return nil, fmt.Errorf("%w: %s is a %s", domain.ErrNotEquippable, item.Name, item.Type)
	}

	inventory, err := tx.GetInventoryForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if !inventory.Has(itemCode) {
		return nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, domain.ErrNotInInventory, itemCode)
	}

	equipped, err := tx.GetEquipmentForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEquipmentFailed, err)
	}
	newEquipment, err := domain.Equip(*equipped, item)
	if err != nil {
		return nil, err
	}
	newInventory, err := domain.RemoveItems(*inventory, []domain.BatchEntry{{ItemCode: itemCode, Count: 1}})
	if err != nil {
		return nil, err
	}
	newCharacter := character.ApplyStats(item.Stats)

	if err := s.persist(ctx, tx, newCharacter, newEquipment, newInventory); err != nil {
		return nil, err
	}

	event.PublishAfterCommit(ctx, s.publisher, event.NewEquipmentEvent(event.ItemEquipped, characterID, item))
	logger.FromContext(ctx).Info(LogMsgItemEquipped, "character_id", characterID, "item_code", itemCode)

	return &Result{Character: newCharacter, Equipment: newEquipment, Inventory: newInventory}, nil
}

func (s *service) UnequipItem(ctx context.Context, userID string, characterID int64, itemCode int) (*Result, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := repository.LockOwnedCharacter(ctx, tx, characterID, userID)
	if err != nil {
		return nil, err
	}

	inventory, err := tx.GetInventoryForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	equipped, err := tx.GetEquipmentForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEquipmentFailed, err)
	}

	newEquipment, removed, err := domain.Unequip(*equipped, itemCode)
	if err != nil {
		return nil, err
	}
	// The snapshot taken at equip time decides what comes off, even if the catalog changed since
	newCharacter := character.RemoveStats(removed.Stats)
	newInventory := domain.AddSnapshot(*inventory, removed, 1)

	if err := s.persist(ctx, tx, newCharacter, newEquipment, newInventory); err != nil {
		return nil, err
	}

	event.PublishAfterCommit(ctx, s.publisher, event.NewEquipmentEvent(event.ItemUnequipped, characterID, removed))
	logger.FromContext(ctx).Info(LogMsgItemUnequipped, "character_id", characterID, "item_code", itemCode)

	return &Result{Character: newCharacter, Equipment: newEquipment, Inventory: newInventory}, nil
}

// persist writes all three records and commits
func (s *service) persist(ctx context.Context, tx repository.CharacterTx, c domain.Character, e domain.Equipment, inv domain.Inventory) error {
	if err := tx.UpdateEquipment(ctx, e); err != nil {
		return fmt.Errorf(ErrMsgUpdateEquipmentFailed, err)
	}
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

func (s *service) ListEquipped(ctx context.Context, characterID int64) ([]domain.Item, error) {
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}
	equipped, err := s.repo.GetEquipment(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEquipmentFailed, err)
	}
	if equipped.Items == nil {
		return []domain.Item{}, nil
	}
	return equipped.Items, nil
}
