package repository

import (
	"context"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Character defines persistence for characters and their child records.
// Reads outside BeginTx take no locks.
type Character interface {
	GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error)
	GetInventory(ctx context.Context, characterID int64) (*domain.Inventory, error)
	GetEquipment(ctx context.Context, characterID int64) (*domain.Equipment, error)
	BeginTx(ctx context.Context) (CharacterTx, error)
}

// CharacterTx is one atomic unit of work over a character, its inventory,
// its equipped set and a catalog snapshot. Locks are taken in that order.
type CharacterTx interface {
	Tx
	// GetCharacterForUpdate locks the character row. Returns domain.ErrCharacterNotFound.
	GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error)
	// CreateCharacter assigns ID and CreatedAt. Returns domain.ErrDuplicateName.
	CreateCharacter(ctx context.Context, character *domain.Character) error
	UpdateCharacter(ctx context.Context, character domain.Character) error
	DeleteCharacter(ctx context.Context, characterID int64) error

	// GetInventoryForUpdate returns an empty inventory when none is stored
	GetInventoryForUpdate(ctx context.Context, characterID int64) (*domain.Inventory, error)
	UpdateInventory(ctx context.Context, inventory domain.Inventory) error

	// GetEquipmentForUpdate returns an empty set when none is stored
	GetEquipmentForUpdate(ctx context.Context, characterID int64) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, equipment domain.Equipment) error

	// GetItemsByCodes reads the catalog entries for codes; unknown codes are absent from the result
	GetItemsByCodes(ctx context.Context, codes []int) (domain.Catalog, error)
}
