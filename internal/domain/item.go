package domain

import (
	"fmt"
	"strings"
)

// ItemType is the equipment slot category of a catalog item
type ItemType string

const (
	ItemTypeHat      ItemType = "hat"
	ItemTypeTop      ItemType = "top"
	ItemTypeBottom   ItemType = "bottom"
	ItemTypeWeapon   ItemType = "weapon"
	ItemTypeShoes    ItemType = "shoes"
	ItemTypeRing     ItemType = "ring"
	ItemTypeNecklace ItemType = "necklace"
	ItemTypeEarring  ItemType = "earring"
	ItemTypePotion   ItemType = "potion"
)

// AllItemTypes lists every accepted item type
var AllItemTypes = []ItemType{
	ItemTypeHat,
	ItemTypeTop,
	ItemTypeBottom,
	ItemTypeWeapon,
	ItemTypeShoes,
	ItemTypeRing,
	ItemTypeNecklace,
	ItemTypeEarring,
	ItemTypePotion,
}

// slotCapacity is the number of items of a type that can be equipped at once.
// Types missing from the map (potion) cannot be equipped.
var slotCapacity = map[ItemType]int{
	ItemTypeTop:      1,
	ItemTypeBottom:   1,
	ItemTypeShoes:    1,
	ItemTypeWeapon:   1,
	ItemTypeHat:      1,
	ItemTypeNecklace: 1,
	ItemTypeRing:     2,
	ItemTypeEarring:  2,
}

// ParseItemType validates and normalises an item type string
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidItemType, s)
	}
	return t, nil
}

// Valid reports whether t is one of AllItemTypes
func (t ItemType) Valid() bool {
	for _, known := range AllItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SlotCapacity returns how many items of this type may be equipped together (0 = never).
func (t ItemType) SlotCapacity() int {
	return slotCapacity[t]
}

// Equippable reports whether items of this type can occupy an equipment slot
func (t ItemType) Equippable() bool {
	return t.SlotCapacity() > 0
}

// Item is a catalog definition keyed by Code.
type Item struct {
	Code  int      `json:"itemCode"`
	Name  string   `json:"name"`
	Type  ItemType `json:"itemType"`
	Stats Stats    `json:"stats"`
	Price int64    `json:"price"`
}

// Validate checks an item definition at ingestion time
func (i Item) Validate() error {
	if i.Code <= 0 || i.Code > MaxItemCode {
		return fmt.Errorf("%w: item code must be between 1 and %d", ErrInvalidInput, MaxItemCode)
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if !i.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidItemType, i.Type)
	}
	if i.Price < 0 || i.Price > MaxItemPrice {
		return fmt.Errorf("%w: price must be between 0 and %d", ErrInvalidInput, MaxItemPrice)
	}
	return nil
}

// ResalePrice is the amount paid back when count units are sold.
func (i Item) ResalePrice(count int) int64 {
	return i.Price * int64(count) * ResaleNumerator / ResaleDenominator
}

// ItemPrice is a catalog price listing entry
type ItemPrice struct {
	Code      int      `json:"itemCode"`
	Name      string   `json:"name"`
	Type      ItemType `json:"itemType"`
	BuyPrice  int64    `json:"buyPrice"`
	SellPrice int64    `json:"sellPrice"`
}

// Catalog is a read-only snapshot of item definitions for the duration of one request.
type Catalog map[int]Item

// NewCatalog indexes items by code
func NewCatalog(items []Item) Catalog {
	c := make(Catalog, len(items))
	for _, item := range items {
		c[item.Code] = item
	}
	return c
}

// Lookup resolves an item code
func (c Catalog) Lookup(code int) (Item, bool) {
	item, ok := c[code]
	return item, ok
}
