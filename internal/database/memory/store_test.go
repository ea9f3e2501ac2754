package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
	"github.com/osse101/Armory_Go/internal/testing/leaktest"
)

var (
	_ repository.Character = (*Store)(nil)
	_ repository.Item      = (*Store)(nil)
	_ repository.User      = (*Store)(nil)
)

func newStoreWithCharacter(t *testing.T) (*Store, domain.Character) {
	t.Helper()
	ctx := context.Background()
	s := NewStore(time.Second)
	require.NoError(t, s.CreateUser(ctx, &domain.User{ID: "user-1", LoginID: "user1"}))

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	c := domain.NewCharacter("user-1", "Hero")
	require.NoError(t, tx.CreateCharacter(ctx, &c))
	require.NoError(t, tx.UpdateInventory(ctx, domain.Inventory{CharacterID: c.ID}))
	require.NoError(t, tx.UpdateEquipment(ctx, domain.Equipment{CharacterID: c.ID}))
	require.NoError(t, tx.Commit(ctx))
	return s, c
}

func TestTx_CommitPublishes(t *testing.T) {
	s, c := newStoreWithCharacter(t)
	ctx := context.Background()

	assert.Equal(t, int64(1), c.ID)

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	locked, err := tx.GetCharacterForUpdate(ctx, c.ID)
	require.NoError(t, err)
	credited, err := locked.Credit(500)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateCharacter(ctx, credited))
	require.NoError(t, tx.UpdateInventory(ctx, domain.Inventory{CharacterID: c.ID, Stacks: []domain.Stack{{ItemCode: 1, Count: 2}}}))

	// Not visible before commit
	got, err := s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultCharacterMoney), got.Money)

	require.NoError(t, tx.Commit(ctx))

	got, err = s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultCharacterMoney+500), got.Money)
	inv, err := s.GetInventory(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, inv.Stacks[0].Count)

	assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)
	assert.ErrorIs(t, tx.Commit(ctx), domain.ErrTxClosed)
}

func TestTx_RollbackDiscards(t *testing.T) {
	s, c := newStoreWithCharacter(t)
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateEquipment(ctx, domain.Equipment{CharacterID: c.ID, Items: []domain.Item{{Code: 1}}}))
	require.NoError(t, tx.DeleteCharacter(ctx, c.ID))
	require.NoError(t, tx.Rollback(ctx))

	_, err = s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	eq, err := s.GetEquipment(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, eq.Items)
}

func TestTx_DeleteCascades(t *testing.T) {
	s, c := newStoreWithCharacter(t)
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.DeleteCharacter(ctx, c.ID))
	_, err = tx.GetCharacterForUpdate(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	require.NoError(t, tx.Commit(ctx))

	_, err = s.GetCharacter(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	inv, err := s.GetInventory(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, inv.Stacks)
}

func TestTx_DuplicateNameAndUnknownUser(t *testing.T) {
	s, _ := newStoreWithCharacter(t)
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	dup := domain.NewCharacter("user-1", "Hero")
	assert.ErrorIs(t, tx.CreateCharacter(ctx, &dup), domain.ErrDuplicateName)

	orphan := domain.NewCharacter("ghost", "Ghost")
	assert.ErrorIs(t, tx.CreateCharacter(ctx, &orphan), domain.ErrUserNotFound)

	second := domain.NewCharacter("user-1", "Sidekick")
	require.NoError(t, tx.CreateCharacter(ctx, &second))
	third := domain.NewCharacter("user-1", "Sidekick")
	assert.ErrorIs(t, tx.CreateCharacter(ctx, &third), domain.ErrDuplicateName)
}

func TestTx_NegativeBalanceRejected(t *testing.T) {
	s, c := newStoreWithCharacter(t)
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	c.Money = -1
	assert.ErrorIs(t, tx.UpdateCharacter(ctx, c), domain.ErrInsufficientFunds)
}

func TestBeginTx_WaitsAndTimesOut(t *testing.T) {
	s := NewStore(50 * time.Millisecond)
	ctx := context.Background()

	held, err := s.BeginTx(ctx)
	require.NoError(t, err)

	_, err = s.BeginTx(ctx)
	assert.ErrorIs(t, err, domain.ErrTxTimeout)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.BeginTx(cancelled)
	assert.ErrorIs(t, err, context.Canceled)

	// The holder outlived its deadline, so it can no longer commit
	time.Sleep(60 * time.Millisecond)
	assert.ErrorIs(t, held.Commit(ctx), domain.ErrTxTimeout)

	next, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, next.Rollback(ctx))
}

func TestTx_ConcurrentCreditsSerialize(t *testing.T) {
	s, c := newStoreWithCharacter(t)
	ctx := context.Background()
	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := s.BeginTx(ctx)
			if !assert.NoError(t, err) {
				return
			}
			defer repository.SafeRollback(ctx, tx)
			locked, err := tx.GetCharacterForUpdate(ctx, c.ID)
			if !assert.NoError(t, err) {
				return
			}
			credited, err := locked.Credit(1)
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, tx.UpdateCharacter(ctx, credited))
			assert.NoError(t, tx.Commit(ctx))
		}()
	}
	wg.Wait()

	got, err := s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultCharacterMoney+50), got.Money)
	checker.Check(2)
}

func TestStore_Items(t *testing.T) {
	s := NewStore(time.Second)
	ctx := context.Background()

	ring := domain.Item{Code: 5, Name: "Ring", Type: domain.ItemTypeRing, Price: 10}
	require.NoError(t, s.CreateItem(ctx, ring))
	assert.ErrorIs(t, s.CreateItem(ctx, ring), domain.ErrDuplicateItemCode)

	n, err := s.SeedItems(ctx, []domain.Item{ring, {Code: 2, Name: "Hat", Type: domain.ItemTypeHat}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, []int{items[0].Code, items[1].Code})

	require.NoError(t, s.UpdateItem(ctx, domain.Item{Code: 5, Name: "Gold Ring", Price: 999, Stats: domain.Stats{LUK: 1}}))
	got, err := s.GetItem(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Gold Ring", got.Name)
	assert.Equal(t, int64(10), got.Price)
	assert.Equal(t, domain.ItemTypeRing, got.Type)

	require.NoError(t, s.DeleteItem(ctx, 5))
	_, err = s.GetItem(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
