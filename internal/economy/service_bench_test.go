package economy

import (
	"context"
	"testing"

	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/testing/fixtures"
)

// BenchmarkBuySellRoundTrip measures one buy and one sell transaction
// against the in-memory store with an event bus attached.
func BenchmarkBuySellRoundTrip(b *testing.B) {
	store := fixtures.NewStore(b)
	svc := NewService(store, store, event.NewMemoryBus())
	ctx := context.Background()

	c := fixtures.NewCharacter(b, store, fixtures.Owner, "Bench", 1<<40)
	batch := entries(fixtures.CodeSword, 3, fixtures.CodePotion, 10, fixtures.CodeRing, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.BuyItems(ctx, fixtures.Owner, c.ID, batch); err != nil {
			b.Fatal(err)
		}
		if _, err := svc.SellItems(ctx, fixtures.Owner, c.ID, batch); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuyItems_Parallel(b *testing.B) {
	store := fixtures.NewStore(b)
	svc := NewService(store, store, nil)
	ctx := context.Background()

	c := fixtures.NewCharacter(b, store, fixtures.Owner, "Bench", 1<<50)
	batch := entries(fixtures.CodeHat, 1)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.BuyItems(ctx, fixtures.Owner, c.ID, batch); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
