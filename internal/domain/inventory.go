package domain

import "fmt"

// Stack is one inventory entry: a count of a single item code plus the
// catalog fields captured when the stack was created.
type Stack struct {
	ItemCode int      `json:"itemCode"`
	Count    int      `json:"count"`
	Name     string   `json:"name"`
	ItemType ItemType `json:"itemType"`
	Price    int64    `json:"price"`
	Stats    Stats    `json:"stats"`
}

// Snapshot returns the catalog view of the stack
func (s Stack) Snapshot() Item {
	return Item{Code: s.ItemCode, Name: s.Name, Type: s.ItemType, Price: s.Price, Stats: s.Stats}
}

// Inventory represents the structure stored in the JSONB column
type Inventory struct {
	CharacterID int64   `json:"-"`
	Stacks      []Stack `json:"items"`
}

// BatchEntry is one {itemcode, count} line of a buy or sell request
type BatchEntry struct {
	ItemCode int `json:"itemcode"`
	Count    int `json:"count"`
}

// Coalesce merges duplicate item codes by summing counts, keeping the order
// in which codes first appear. Every count must be within 1..MaxTransactionQuantity.
func Coalesce(batch []BatchEntry) ([]BatchEntry, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalidInput)
	}

	index := make(map[int]int, len(batch))
	out := make([]BatchEntry, 0, len(batch))
	for _, entry := range batch {
		if entry.ItemCode <= 0 {
			return nil, fmt.Errorf("%w: item code %d", ErrInvalidInput, entry.ItemCode)
		}
		if entry.Count <= 0 || entry.Count > MaxTransactionQuantity {
			return nil, fmt.Errorf("%w: count %d for item %d", ErrInvalidInput, entry.Count, entry.ItemCode)
		}
		if i, ok := index[entry.ItemCode]; ok {
			out[i].Count += entry.Count
			if out[i].Count > MaxTransactionQuantity {
				return nil, fmt.Errorf("%w: count %d for item %d", ErrInvalidInput, out[i].Count, entry.ItemCode)
			}
			continue
		}
		index[entry.ItemCode] = len(out)
		out = append(out, entry)
	}

	if len(out) > MaxBatchEntries {
		return nil, fmt.Errorf("%w: %d distinct items exceeds %d", ErrInvalidInput, len(out), MaxBatchEntries)
	}
	return out, nil
}

// Codes returns the item codes of a batch in order
func Codes(batch []BatchEntry) []int {
	codes := make([]int, len(batch))
	for i, entry := range batch {
		codes[i] = entry.ItemCode
	}
	return codes
}

// Clone returns a deep copy
func (inv Inventory) Clone() Inventory {
	stacks := make([]Stack, len(inv.Stacks))
	copy(stacks, inv.Stacks)
	return Inventory{CharacterID: inv.CharacterID, Stacks: stacks}
}

// FindStack returns the index and value of the stack holding code.
// Returns -1 when there is none.
func (inv Inventory) FindStack(code int) (int, Stack) {
	for i, s := range inv.Stacks {
		if s.ItemCode == code {
			return i, s
		}
	}
	return -1, Stack{}
}

// Has reports whether the inventory holds at least one unit of code
func (inv Inventory) Has(code int) bool {
	idx, _ := inv.FindStack(code)
	return idx != -1
}

// AddSnapshot returns a new inventory with count units of item merged in.
// An existing stack keeps its captured fields; a new stack captures item.
func AddSnapshot(inv Inventory, item Item, count int) Inventory {
	out := inv.Clone()
	if idx, _ := out.FindStack(item.Code); idx != -1 {
		out.Stacks[idx].Count += count
		return out
	}
	out.Stacks = append(out.Stacks, Stack{
		ItemCode: item.Code,
		Count:    count,
		Name:     item.Name,
		ItemType: item.Type,
		Price:    item.Price,
		Stats:    item.Stats,
	})
	return out
}

// AddItems merges a coalesced batch into the inventory using catalog snapshots.
func AddItems(inv Inventory, batch []BatchEntry, catalog Catalog) (Inventory, error) {
	out := inv.Clone()
	for _, entry := range batch {
		item, ok := catalog.Lookup(entry.ItemCode)
		if !ok {
			return inv, fmt.Errorf("%w: %d", ErrItemNotFound, entry.ItemCode)
		}
		out = AddSnapshot(out, item, entry.Count)
	}
	return out, nil
}

// RemoveItems returns a new inventory with every batch entry decremented.
// Stacks that reach zero are dropped. The input is never modified, so a
// failure leaves the caller's inventory untouched.
func RemoveItems(inv Inventory, batch []BatchEntry) (Inventory, error) {
	out := inv.Clone()
	for _, entry := range batch {
		idx, stack := out.FindStack(entry.ItemCode)
		if idx == -1 {
			return inv, fmt.Errorf("%w: %d", ErrNotInInventory, entry.ItemCode)
		}
		if stack.Count < entry.Count {
			return inv, fmt.Errorf("%w: item %d has %d, requested %d", ErrInsufficientQuantity, entry.ItemCode, stack.Count, entry.Count)
		}
		if stack.Count == entry.Count {
			out.Stacks = append(out.Stacks[:idx:idx], out.Stacks[idx+1:]...)
			continue
		}
		out.Stacks[idx].Count -= entry.Count
	}
	return out, nil
}
