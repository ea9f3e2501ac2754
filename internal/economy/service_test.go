package economy

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/testing/fixtures"
	"github.com/osse101/Armory_Go/internal/testing/mocks"
)

func entries(pairs ...int) []domain.BatchEntry {
	batch := make([]domain.BatchEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		batch = append(batch, domain.BatchEntry{ItemCode: pairs[i], Count: pairs[i+1]})
	}
	return batch
}

func TestBuyThenSell(t *testing.T) {
	store := fixtures.NewStore(t)
	recorder := &mocks.EventRecorder{}
	svc := NewService(store, store, recorder)
	ctx := context.Background()

	c := fixtures.NewCharacter(t, store, fixtures.Owner, "Merchant", 5000)

	bought, err := svc.BuyItems(ctx, fixtures.Owner, c.ID, entries(fixtures.CodeSword, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(4000), bought.Total)
	assert.Equal(t, int64(1000), bought.Balance)
	assert.Equal(t, 2, fixtures.Count(bought.Inventory, fixtures.CodeSword))

	sold, err := svc.SellItems(ctx, fixtures.Owner, c.ID, entries(fixtures.CodeSword, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1200), sold.Total)
	assert.Equal(t, int64(2200), sold.Balance)
	assert.Equal(t, []Line{{ItemCode: fixtures.CodeSword, Name: "Sword", Count: 1, Amount: 1200}}, sold.Lines)

	char, inv, _ := fixtures.Snapshot(t, store, c.ID)
	assert.Equal(t, int64(2200), char.Money)
	assert.Equal(t, 1, fixtures.Count(inv, fixtures.CodeSword))

	assert.Equal(t, []event.Type{event.ItemsBought, event.ItemsSold}, recorder.Types())
	payload, err := event.DecodePayload[event.TradePayloadV1](recorder.Events()[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), payload.Total)
	assert.Equal(t, int64(1000), payload.Balance)
}

func TestBuyItems_CoalescesDuplicates(t *testing.T) {
	store := fixtures.NewStore(t)
	svc := NewService(store, store, nil)

	c := fixtures.NewCharacter(t, store, fixtures.Owner, "Shopper", 10000)

	result, err := svc.BuyItems(context.Background(), fixtures.Owner, c.ID,
		entries(fixtures.CodePotion, 2, fixtures.CodeRing, 1, fixtures.CodePotion, 3))
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{ItemCode: fixtures.CodePotion, Name: "Potion", Count: 5, Amount: 250},
		{ItemCode: fixtures.CodeRing, Name: "Ring", Count: 1, Amount: 700},
	}, result.Lines)
	assert.Equal(t, int64(10000-950), result.Balance)
	require.Len(t, result.Inventory.Stacks, 2)
	assert.Equal(t, 5, fixtures.Count(result.Inventory, fixtures.CodePotion))
}

func TestBuyItems_Errors(t *testing.T) {
	store := fixtures.NewStore(t)
	recorder := &mocks.EventRecorder{}
	svc := NewService(store, store, recorder)
	ctx := context.Background()

	c := fixtures.NewCharacter(t, store, fixtures.Owner, "Broke", 2500)

	tests := []struct {
		name        string
		userID      string
		characterID int64
		batch       []domain.BatchEntry
		wantErr     error
	}{
		{"insufficient funds", fixtures.Owner, c.ID, entries(fixtures.CodeSword, 1, fixtures.CodeRing, 1), domain.ErrInsufficientFunds},
		{"unknown code", fixtures.Owner, c.ID, entries(fixtures.CodeHat, 1, fixtures.CodeUnlisted, 1), domain.ErrItemNotFound},
		{"stranger", fixtures.Stranger, c.ID, entries(fixtures.CodeHat, 1), domain.ErrForbidden},
		{"missing character", fixtures.Owner, c.ID + 9, entries(fixtures.CodeHat, 1), domain.ErrForbidden},
		{"zero count", fixtures.Owner, c.ID, entries(fixtures.CodeHat, 0), domain.ErrInvalidInput},
		{"negative count", fixtures.Owner, c.ID, entries(fixtures.CodeHat, -1), domain.ErrInvalidInput},
		{"over limit", fixtures.Owner, c.ID, entries(fixtures.CodeHat, domain.MaxTransactionQuantity+1), domain.ErrInvalidInput},
		{"empty batch", fixtures.Owner, c.ID, nil, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BuyItems(ctx, tt.userID, tt.characterID, tt.batch)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	char, inv, _ := fixtures.Snapshot(t, store, c.ID)
	assert.Equal(t, int64(2500), char.Money)
	assert.Empty(t, inv.Stacks)
	assert.Empty(t, recorder.Events())
}

func TestBuyItems_ExactBalance(t *testing.T) {
	store := fixtures.NewStore(t)
	svc := NewService(store, store, nil)

	c := fixtures.NewCharacter(t, store, fixtures.Owner, "AllIn", 2000)

	result, err := svc.BuyItems(context.Background(), fixtures.Owner, c.ID, entries(fixtures.CodeSword, 1))
	require.NoError(t, err)
	assert.Zero(t, result.Balance)
}

func TestSellItems_Errors(t *testing.T) {
	store := fixtures.NewStore(t)
	svc := NewService(store, store, nil)
	ctx := context.Background()

	c := fixtures.NewCharacter(t, store, fixtures.Owner, "Seller", 100)
	fixtures.Give(t, store, c.ID, fixtures.Ring, 2)
	fixtures.Give(t, store, c.ID, fixtures.Hat, 1)
	// A stack whose catalog entry no longer exists
	fixtures.Give(t, store, c.ID, domain.Item{Code: 77, Name: "Relic", Type: domain.ItemTypeNecklace, Price: 400}, 1)

	tests := []struct {
		name    string
		userID  string
		batch   []domain.BatchEntry
		wantErr error
	}{
		{"not held", fixtures.Owner, entries(fixtures.CodeRing, 1, fixtures.CodeSword, 1), domain.ErrNotInInventory},
		{"not held wins over unknown", fixtures.Owner, entries(fixtures.CodeUnlisted, 1), domain.ErrNotInInventory},
		{"retired item", fixtures.Owner, entries(77, 1), domain.ErrItemNotFound},
		{"retired item wins over quantity", fixtures.Owner, entries(77, 5), domain.ErrItemNotFound},
		{"more than held", fixtures.Owner, entries(fixtures.CodeRing, 3), domain.ErrInsufficientQuantity},
		{"coalesced over held", fixtures.Owner, entries(fixtures.CodeRing, 2, fixtures.CodeRing, 1), domain.ErrInsufficientQuantity},
		{"stranger", fixtures.Stranger, entries(fixtures.CodeRing, 1), domain.ErrForbidden},
		{"bad count", fixtures.Owner, entries(fixtures.CodeRing, 0), domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, beforeInv, _ := fixtures.Snapshot(t, store, c.ID)
			_, err := svc.SellItems(ctx, tt.userID, c.ID, tt.batch)
			assert.ErrorIs(t, err, tt.wantErr)
			after, afterInv, _ := fixtures.Snapshot(t, store, c.ID)
			assert.Equal(t, before.Money, after.Money)
			assert.Equal(t, beforeInv, afterInv)
		})
	}
}

func TestSellItems_RemovesEmptiedStacks(t *testing.T) {
	store := fixtures.NewStore(t)
	svc := NewService(store, store, nil)

	c := fixtures.NewCharacter(t, store, fixtures.Owner, "Clearance", 0)
	fixtures.Give(t, store, c.ID, fixtures.Ring, 2)
	fixtures.Give(t, store, c.ID, fixtures.Hat, 1)

	result, err := svc.SellItems(context.Background(), fixtures.Owner, c.ID, entries(fixtures.CodeRing, 2, fixtures.CodeHat, 1))
	require.NoError(t, err)
	// 700*2*6/10 = 840, 1*6/10 rounds down to 0
	assert.Equal(t, int64(840), result.Total)
	assert.Empty(t, result.Inventory.Stacks)
}

func TestSellItems_UsesCurrentCatalogPrice(t *testing.T) {
	store := fixtures.NewStore(t)
	svc := NewService(store, store, nil)
	ctx := context.Background()

	c := fixtures.NewCharacter(t, store, fixtures.Owner, "Speculator", 0)
	fixtures.Give(t, store, c.ID, fixtures.Earring, 1)

	require.NoError(t, store.DeleteItem(ctx, fixtures.CodeEarring))
	repriced := fixtures.Earring
	repriced.Price = 5000
	require.NoError(t, store.CreateItem(ctx, repriced))

	result, err := svc.SellItems(ctx, fixtures.Owner, c.ID, entries(fixtures.CodeEarring, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(3000), result.Balance)
}

func TestBuyItems_ConcurrentNeverOverspends(t *testing.T) {
	store := fixtures.NewStore(t)
	svc := NewService(store, store, nil)
	ctx := context.Background()

	c := fixtures.NewCharacter(t, store, fixtures.Owner, "Rush", 5000)

	const buyers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.BuyItems(ctx, fixtures.Owner, c.ID, entries(fixtures.CodeSword, 1))
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
				return
			}
			mu.Lock()
			successes++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, successes)
	char, inv, _ := fixtures.Snapshot(t, store, c.ID)
	assert.Equal(t, int64(1000), char.Money)
	assert.Equal(t, 2, fixtures.Count(inv, fixtures.CodeSword))
}

func TestGetPrices(t *testing.T) {
	store := fixtures.NewStore(t)
	svc := NewService(store, store, nil)

	prices, err := svc.GetPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 6)
	assert.Equal(t, domain.ItemPrice{
		Code:      fixtures.CodeSword,
		Name:      "Sword",
		Type:      domain.ItemTypeWeapon,
		BuyPrice:  2000,
		SellPrice: 1200,
	}, prices[0])
	assert.Equal(t, int64(599), prices[fixtures.CodeEarring-1].SellPrice)
}

type failingCatalog struct{}

func (failingCatalog) ListItems(ctx context.Context) ([]domain.Item, error) {
	return nil, errors.New("catalog offline")
}

func TestGetPrices_CatalogError(t *testing.T) {
	svc := NewService(nil, failingCatalog{}, nil)
	_, err := svc.GetPrices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list items")
}

func TestSellItems_CommitFailurePublishesNothing(t *testing.T) {
	repo, tx := mocks.NewRepositoryWithTx()
	tx.On("GetCharacterForUpdate", mock.Anything, int64(3)).Return(&domain.Character{ID: 3, UserID: fixtures.Owner, Money: 10}, nil)
	tx.On("GetInventoryForUpdate", mock.Anything, int64(3)).Return(&domain.Inventory{CharacterID: 3, Stacks: []domain.Stack{{ItemCode: fixtures.CodeRing, Count: 1}}}, nil)
	tx.On("GetItemsByCodes", mock.Anything, []int{fixtures.CodeRing}).Return(domain.NewCatalog([]domain.Item{fixtures.Ring}), nil)
	tx.On("UpdateInventory", mock.Anything, mock.Anything).Return(nil)
	tx.On("UpdateCharacter", mock.Anything, mock.MatchedBy(func(c domain.Character) bool { return c.Money == 430 })).Return(nil)
	tx.On("Commit", mock.Anything).Return(errors.New("serialization failure"))

	recorder := &mocks.EventRecorder{}
	svc := NewService(repo, nil, recorder)

	_, err := svc.SellItems(context.Background(), fixtures.Owner, 3, entries(fixtures.CodeRing, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
	assert.Empty(t, recorder.Events())
	tx.AssertExpectations(t)
}

func TestTrade_OutOfRangeCatalogPrice(t *testing.T) {
	ctx := context.Background()
	crown := domain.Item{Code: 77, Name: "Crown", Type: domain.ItemTypeHat, Price: math.MaxInt64 - 499}
	scepter := domain.Item{Code: 78, Name: "Scepter", Type: domain.ItemTypeWeapon, Price: math.MaxInt64 / 5}

	tests := []struct {
		name  string
		trade func(Service, int64) (*TradeResult, error)
		give  *domain.Item
	}{
		{
			name: "buy total would wrap negative",
			trade: func(svc Service, id int64) (*TradeResult, error) {
				return svc.BuyItems(ctx, fixtures.Owner, id, entries(crown.Code, 2))
			},
		},
		{
			name: "sell proceeds would wrap negative",
			give: &scepter,
			trade: func(svc Service, id int64) (*TradeResult, error) {
				return svc.SellItems(ctx, fixtures.Owner, id, entries(scepter.Code, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := fixtures.NewStore(t)
			// Written straight to the store, as a row that predates the price bound would be
			_, err := store.SeedItems(ctx, []domain.Item{crown, scepter})
			require.NoError(t, err)

			c := fixtures.NewCharacter(t, store, fixtures.Owner, "Hoarder", 10000)
			if tt.give != nil {
				fixtures.Give(t, store, c.ID, *tt.give, 1)
			}
			_, before, _ := fixtures.Snapshot(t, store, c.ID)

			svc := NewService(store, store, nil)
			res, err := tt.trade(svc, c.ID)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, res)

			char, inv, _ := fixtures.Snapshot(t, store, c.ID)
			assert.Equal(t, int64(10000), char.Money)
			assert.Equal(t, before, inv)
		})
	}
}

func TestTrade_MaxPriceFullBatch(t *testing.T) {
	ctx := context.Background()
	store := fixtures.NewStore(t)

	batch := make([]domain.Item, domain.MaxBatchEntries)
	for i := range batch {
		batch[i] = domain.Item{Code: 1000 + i, Name: "Relic", Type: domain.ItemTypeRing, Price: domain.MaxItemPrice}
		require.NoError(t, batch[i].Validate())
	}
	_, err := store.SeedItems(ctx, batch)
	require.NoError(t, err)

	lines := make([]int, 0, 2*len(batch))
	for _, item := range batch {
		lines = append(lines, item.Code, domain.MaxTransactionQuantity)
	}

	const perLine = int64(domain.MaxItemPrice) * domain.MaxTransactionQuantity
	const total = perLine * domain.MaxBatchEntries
	c := fixtures.NewCharacter(t, store, fixtures.Owner, "Tycoon", total)
	svc := NewService(store, store, nil)

	bought, err := svc.BuyItems(ctx, fixtures.Owner, c.ID, entries(lines...))
	require.NoError(t, err)
	assert.Equal(t, total, bought.Total)
	assert.Equal(t, int64(0), bought.Balance)

	sold, err := svc.SellItems(ctx, fixtures.Owner, c.ID, entries(lines...))
	require.NoError(t, err)
	assert.Equal(t, total*domain.ResaleNumerator/domain.ResaleDenominator, sold.Total)
	assert.Equal(t, sold.Total, sold.Balance)
}
