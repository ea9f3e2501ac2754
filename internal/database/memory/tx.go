package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Tx stages character, inventory and equipment writes until Commit.
// A nil entry in characters marks a deletion.
type Tx struct {
	store    *Store
	deadline time.Time
	closed   bool

	characters  map[int64]*domain.Character
	inventories map[int64]domain.Inventory
	equipment   map[int64]domain.Equipment
	nextID      int64
}

func (t *Tx) check() error {
	if t.closed {
		return domain.ErrTxClosed
	}
	if time.Now().After(t.deadline) {
		return fmt.Errorf("%w: transaction held past its deadline", domain.ErrTxTimeout)
	}
	return nil
}

func (t *Tx) release() {
	t.closed = true
	<-t.store.sem
}

// Commit publishes the staged writes
func (t *Tx) Commit(ctx context.Context) error {
	if err := t.check(); err != nil {
		if !t.closed {
			t.release()
		}
		return err
	}

	s := t.store
	s.mu.Lock()
	for id, c := range t.characters {
		if c == nil {
			delete(s.characters, id)
			delete(s.inventories, id)
			delete(s.equipment, id)
			continue
		}
		s.characters[id] = *c
	}
	for id, inv := range t.inventories {
		if !t.deleted(id) {
			s.inventories[id] = inv
		}
	}
	for id, eq := range t.equipment {
		if !t.deleted(id) {
			s.equipment[id] = eq
		}
	}
	if t.nextID > s.nextID {
		s.nextID = t.nextID
	}
	s.mu.Unlock()

	t.release()
	return nil
}

// Rollback discards the staged writes
func (t *Tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.release()
	return nil
}

func (t *Tx) deleted(id int64) bool {
	c, ok := t.characters[id]
	return ok && c == nil
}

func (t *Tx) lookupCharacter(id int64) (domain.Character, bool) {
	if c, ok := t.characters[id]; ok {
		if c == nil {
			return domain.Character{}, false
		}
		return *c, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	c, ok := t.store.characters[id]
	return c, ok
}

// GetCharacterForUpdate returns the character as seen by this transaction
func (t *Tx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	c, ok := t.lookupCharacter(characterID)
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

// CreateCharacter assigns the next id and stages the insert
func (t *Tx) CreateCharacter(ctx context.Context, character *domain.Character) error {
	if err := t.check(); err != nil {
		return err
	}

	s := t.store
	s.mu.RLock()
	_, userExists := s.users[character.UserID]
	taken := false
	for id, c := range s.characters {
		if _, staged := t.characters[id]; staged {
			continue
		}
		if c.Name == character.Name {
			taken = true
		}
	}
	if t.nextID == 0 {
		t.nextID = s.nextID
	}
	s.mu.RUnlock()

	for _, c := range t.characters {
		if c != nil && c.Name == character.Name {
			taken = true
		}
	}
	if !userExists {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, character.UserID)
	}
	if taken {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateName, character.Name)
	}

	t.nextID++
	character.ID = t.nextID
	character.CreatedAt = time.Now().UTC()
	staged := *character
	t.characters[character.ID] = &staged
	return nil
}

// UpdateCharacter stages new health, stats and money
func (t *Tx) UpdateCharacter(ctx context.Context, character domain.Character) error {
	if err := t.check(); err != nil {
		return err
	}
	existing, ok := t.lookupCharacter(character.ID)
	if !ok {
		return domain.ErrCharacterNotFound
	}
	if character.Money < 0 {
		return fmt.Errorf("%w: balance would be %d", domain.ErrInsufficientFunds, character.Money)
	}
	existing.Health = character.Health
	existing.Stats = character.Stats
	existing.Money = character.Money
	t.characters[character.ID] = &existing
	return nil
}

// DeleteCharacter stages the delete; children go with it on Commit
func (t *Tx) DeleteCharacter(ctx context.Context, characterID int64) error {
	if err := t.check(); err != nil {
		return err
	}
	if _, ok := t.lookupCharacter(characterID); !ok {
		return domain.ErrCharacterNotFound
	}
	t.characters[characterID] = nil
	delete(t.inventories, characterID)
	delete(t.equipment, characterID)
	return nil
}

// GetInventoryForUpdate returns the inventory as seen by this transaction
func (t *Tx) GetInventoryForUpdate(ctx context.Context, characterID int64) (*domain.Inventory, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	inv, ok := t.inventories[characterID]
	if !ok {
		t.store.mu.RLock()
		inv = t.store.inventories[characterID]
		t.store.mu.RUnlock()
	}
	out := inv.Clone()
	out.CharacterID = characterID
	return &out, nil
}

// UpdateInventory stages the inventory document
func (t *Tx) UpdateInventory(ctx context.Context, inventory domain.Inventory) error {
	if err := t.check(); err != nil {
		return err
	}
	if _, ok := t.lookupCharacter(inventory.CharacterID); !ok {
		return domain.ErrCharacterNotFound
	}
	t.inventories[inventory.CharacterID] = inventory.Clone()
	return nil
}

// GetEquipmentForUpdate returns the equipped set as seen by this transaction
func (t *Tx) GetEquipmentForUpdate(ctx context.Context, characterID int64) (*domain.Equipment, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	eq, ok := t.equipment[characterID]
	if !ok {
		t.store.mu.RLock()
		eq = t.store.equipment[characterID]
		t.store.mu.RUnlock()
	}
	out := eq.Clone()
	out.CharacterID = characterID
	return &out, nil
}

// UpdateEquipment stages the equipped set
func (t *Tx) UpdateEquipment(ctx context.Context, equipment domain.Equipment) error {
	if err := t.check(); err != nil {
		return err
	}
	if _, ok := t.lookupCharacter(equipment.CharacterID); !ok {
		return domain.ErrCharacterNotFound
	}
	t.equipment[equipment.CharacterID] = equipment.Clone()
	return nil
}

// GetItemsByCodes reads the live catalog
func (t *Tx) GetItemsByCodes(ctx context.Context, codes []int) (domain.Catalog, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	catalog := make(domain.Catalog, len(codes))
	for _, code := range codes {
		if item, ok := t.store.items[code]; ok {
			catalog[code] = item
		}
	}
	return catalog, nil
}
