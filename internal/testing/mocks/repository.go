// Package mocks holds testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

// MockCharacterRepository implements repository.Character for testing
type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterRepository) GetInventory(ctx context.Context, characterID int64) (*domain.Inventory, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockCharacterRepository) GetEquipment(ctx context.Context, characterID int64) (*domain.Equipment, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockCharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CharacterTx), args.Error(1)
}

// MockCharacterTx implements repository.CharacterTx for testing
type MockCharacterTx struct {
	mock.Mock
}

func (m *MockCharacterTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCharacterTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCharacterTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterTx) CreateCharacter(ctx context.Context, character *domain.Character) error {
	return m.Called(ctx, character).Error(0)
}

func (m *MockCharacterTx) UpdateCharacter(ctx context.Context, character domain.Character) error {
	return m.Called(ctx, character).Error(0)
}

func (m *MockCharacterTx) DeleteCharacter(ctx context.Context, characterID int64) error {
	return m.Called(ctx, characterID).Error(0)
}

func (m *MockCharacterTx) GetInventoryForUpdate(ctx context.Context, characterID int64) (*domain.Inventory, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockCharacterTx) UpdateInventory(ctx context.Context, inventory domain.Inventory) error {
	return m.Called(ctx, inventory).Error(0)
}

func (m *MockCharacterTx) GetEquipmentForUpdate(ctx context.Context, characterID int64) (*domain.Equipment, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockCharacterTx) UpdateEquipment(ctx context.Context, equipment domain.Equipment) error {
	return m.Called(ctx, equipment).Error(0)
}

func (m *MockCharacterTx) GetItemsByCodes(ctx context.Context, codes []int) (domain.Catalog, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Catalog), args.Error(1)
}

// NewRepositoryWithTx wires a repository mock whose BeginTx returns tx.
// The deferred rollback after a failed step is expected and succeeds.
func NewRepositoryWithTx() (*MockCharacterRepository, *MockCharacterTx) {
	repo := new(MockCharacterRepository)
	tx := new(MockCharacterTx)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	return repo, tx
}

var (
	_ repository.Character   = (*MockCharacterRepository)(nil)
	_ repository.CharacterTx = (*MockCharacterTx)(nil)
)
