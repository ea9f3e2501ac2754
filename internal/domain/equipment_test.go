package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemType_SlotCapacity(t *testing.T) {
	tests := map[ItemType]int{
		ItemTypeTop:      1,
		ItemTypeBottom:   1,
		ItemTypeShoes:    1,
		ItemTypeWeapon:   1,
		ItemTypeHat:      1,
		ItemTypeNecklace: 1,
		ItemTypeRing:     2,
		ItemTypeEarring:  2,
		ItemTypePotion:   0,
	}
	for itemType, want := range tests {
		assert.Equal(t, want, itemType.SlotCapacity(), itemType)
		assert.Equal(t, want > 0, itemType.Equippable(), itemType)
	}
}

func TestEquip(t *testing.T) {
	ring := Item{Code: 3, Name: "Silver Ring", Type: ItemTypeRing}
	sword := Item{Code: 1, Name: "Iron Sword", Type: ItemTypeWeapon}
	potion := Item{Code: 2, Name: "Red Potion", Type: ItemTypePotion}

	t.Run("ring slots hold two", func(t *testing.T) {
		eq, err := Equip(Equipment{}, ring)
		require.NoError(t, err)
		eq, err = Equip(eq, ring)
		require.NoError(t, err)
		assert.Equal(t, 2, eq.CountType(ItemTypeRing))

		_, err = Equip(eq, ring)
		assert.ErrorIs(t, err, ErrSlotFull)
	})

	t.Run("second weapon is rejected", func(t *testing.T) {
		eq, err := Equip(Equipment{}, sword)
		require.NoError(t, err)
		_, err = Equip(eq, Item{Code: 9, Type: ItemTypeWeapon})
		assert.ErrorIs(t, err, ErrSlotFull)
	})

	t.Run("potion is not equippable", func(t *testing.T) {
		_, err := Equip(Equipment{}, potion)
		assert.ErrorIs(t, err, ErrNotEquippable)
	})

	t.Run("input is not modified", func(t *testing.T) {
		base := Equipment{Items: []Item{ring}}
		_, err := Equip(base, sword)
		require.NoError(t, err)
		assert.Len(t, base.Items, 1)
	})
}

func TestUnequip(t *testing.T) {
	eq := Equipment{CharacterID: 4, Items: []Item{
		{Code: 3, Type: ItemTypeRing, Stats: Stats{LUK: 2}},
		{Code: 1, Type: ItemTypeWeapon},
		{Code: 3, Type: ItemTypeRing, Stats: Stats{LUK: 2}},
	}}

	got, removed, err := Unequip(eq, 3)
	require.NoError(t, err)
	assert.Equal(t, Stats{LUK: 2}, removed.Stats)
	assert.Equal(t, []int{1, 3}, []int{got.Items[0].Code, got.Items[1].Code})
	assert.Len(t, eq.Items, 3)

	_, _, err = Unequip(got, 42)
	assert.ErrorIs(t, err, ErrNotEquipped)
}
