package repository

import (
	"context"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Item defines the interface for catalog persistence
type Item interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	// GetItem returns domain.ErrItemNotFound for an unknown code
	GetItem(ctx context.Context, itemCode int) (*domain.Item, error)
	// CreateItem returns domain.ErrDuplicateItemCode when the code is taken
	CreateItem(ctx context.Context, item domain.Item) error
	UpdateItem(ctx context.Context, item domain.Item) error
	DeleteItem(ctx context.Context, itemCode int) error
	// SeedItems inserts items whose code is not yet present and returns how many were added
	SeedItems(ctx context.Context, items []domain.Item) (int, error)
}
