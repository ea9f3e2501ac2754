// Package fixtures builds populated in-memory stores for service tests.
package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/database/memory"
	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Users created by NewStore
const (
	Owner    = "user-owner"
	Stranger = "user-stranger"
)

// Catalog codes seeded by NewStore
const (
	CodeSword    = 1
	CodePotion   = 2
	CodeRing     = 3
	CodeAxe      = 4
	CodeEarring  = 5
	CodeHat      = 6
	CodeUnlisted = 999
)

// Items seeded by NewStore
var (
	Sword   = domain.Item{Code: CodeSword, Name: "Sword", Type: domain.ItemTypeWeapon, Price: 2000, Stats: domain.Stats{ATK: 10, STR: 2}}
	Potion  = domain.Item{Code: CodePotion, Name: "Potion", Type: domain.ItemTypePotion, Price: 50, Stats: domain.Stats{HealAmount: 50}}
	Ring    = domain.Item{Code: CodeRing, Name: "Ring", Type: domain.ItemTypeRing, Price: 700, Stats: domain.Stats{LUK: 3}}
	Axe     = domain.Item{Code: CodeAxe, Name: "Axe", Type: domain.ItemTypeWeapon, Price: 5000, Stats: domain.Stats{ATK: 25, DEX: -2}}
	Earring = domain.Item{Code: CodeEarring, Name: "Earring", Type: domain.ItemTypeEarring, Price: 999, Stats: domain.Stats{INT: 1}}
	Hat     = domain.Item{Code: CodeHat, Name: "Hat", Type: domain.ItemTypeHat, Price: 1, Stats: domain.Stats{DEX: 1}}
)

// NewStore returns a memory store with two users and the fixture catalog
func NewStore(t testing.TB) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore(2 * time.Second)

	require.NoError(t, store.CreateUser(ctx, &domain.User{ID: Owner, LoginID: "owner", Name: "Owner"}))
	require.NoError(t, store.CreateUser(ctx, &domain.User{ID: Stranger, LoginID: "stranger", Name: "Stranger"}))

	_, err := store.SeedItems(ctx, []domain.Item{Sword, Potion, Ring, Axe, Earring, Hat})
	require.NoError(t, err)
	return store
}

// NewCharacter creates a character for userID with the given balance and an empty inventory
func NewCharacter(t testing.TB, repo repository.Character, userID, name string, money int64) domain.Character {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	c := domain.NewCharacter(userID, name)
	c.Money = money
	require.NoError(t, tx.CreateCharacter(ctx, &c))
	require.NoError(t, tx.UpdateInventory(ctx, domain.Inventory{CharacterID: c.ID, Stacks: []domain.Stack{}}))
	require.NoError(t, tx.UpdateEquipment(ctx, domain.Equipment{CharacterID: c.ID, Items: []domain.Item{}}))
	require.NoError(t, tx.Commit(ctx))
	return c
}

// Give adds count units of item to the character's inventory
func Give(t testing.TB, repo repository.Character, characterID int64, item domain.Item, count int) {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	inv, err := tx.GetInventoryForUpdate(ctx, characterID)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateInventory(ctx, domain.AddSnapshot(*inv, item, count)))
	require.NoError(t, tx.Commit(ctx))
}

// Snapshot returns the committed character, inventory and equipment
func Snapshot(t testing.TB, repo repository.Character, characterID int64) (domain.Character, domain.Inventory, domain.Equipment) {
	t.Helper()
	ctx := context.Background()

	c, err := repo.GetCharacter(ctx, characterID)
	require.NoError(t, err)
	inv, err := repo.GetInventory(ctx, characterID)
	require.NoError(t, err)
	eq, err := repo.GetEquipment(ctx, characterID)
	require.NoError(t, err)
	return *c, *inv, *eq
}

// Count returns how many units of code the inventory holds
func Count(inv domain.Inventory, code int) int {
	_, stack := inv.FindStack(code)
	return stack.Count
}
