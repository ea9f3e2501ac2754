package domain

import "fmt"

// Equipment is the equipped set of a character, stored as one JSONB document
type Equipment struct {
	CharacterID int64  `json:"-"`
	Items       []Item `json:"equippedItems"`
}

// Clone returns a deep copy
func (e Equipment) Clone() Equipment {
	items := make([]Item, len(e.Items))
	copy(items, e.Items)
	return Equipment{CharacterID: e.CharacterID, Items: items}
}

// CountType returns how many equipped items share the given type
func (e Equipment) CountType(t ItemType) int {
	n := 0
	for _, item := range e.Items {
		if item.Type == t {
			n++
		}
	}
	return n
}

// Find returns the index of the first equipped item with code, or -1
func (e Equipment) Find(code int) int {
	for i, item := range e.Items {
		if item.Code == code {
			return i
		}
	}
	return -1
}

// Equip returns a new equipped set with item appended.
// Fails with ErrNotEquippable for potions and ErrSlotFull at capacity.
func Equip(e Equipment, item Item) (Equipment, error) {
	capacity := item.Type.SlotCapacity()
	if capacity == 0 {
		return e, fmt.Errorf("%w: %s is a %s", ErrNotEquippable, item.Name, item.Type)
	}
	if e.CountType(item.Type) >= capacity {
		return e, fmt.Errorf("%w: %s slots hold %d", ErrSlotFull, item.Type, capacity)
	}
	out := e.Clone()
	out.Items = append(out.Items, item)
	return out, nil
}

// Unequip returns a new equipped set without the first item matching code,
// along with the removed snapshot.
func Unequip(e Equipment, code int) (Equipment, Item, error) {
	idx := e.Find(code)
	if idx == -1 {
		return e, Item{}, fmt.Errorf("%w: %d", ErrNotEquipped, code)
	}
	removed := e.Items[idx]
	out := Equipment{CharacterID: e.CharacterID, Items: make([]Item, 0, len(e.Items)-1)}
	out.Items = append(out.Items, e.Items[:idx]...)
	out.Items = append(out.Items, e.Items[idx+1:]...)
	return out, removed, nil
}
