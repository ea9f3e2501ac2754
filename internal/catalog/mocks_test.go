package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
)

// MockRepository implements repository.Item for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRepository) GetItem(ctx context.Context, itemCode int) (*domain.Item, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) CreateItem(ctx context.Context, item domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockRepository) DeleteItem(ctx context.Context, itemCode int) error {
	return m.Called(ctx, itemCode).Error(0)
}

func (m *MockRepository) SeedItems(ctx context.Context, items []domain.Item) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}
