// Package memory is an in-process implementation of the repository
// interfaces. Transactions run one at a time and stage their writes in an
// overlay that becomes visible only on Commit.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

// DefaultTxTimeout applies when NewStore is given a non-positive timeout
const DefaultTxTimeout = 5 * time.Second

// Store holds all state in maps guarded by mu. sem admits one transaction at a time.
type Store struct {
	mu  sync.RWMutex
	sem chan struct{}

	txTimeout time.Duration

	users       map[string]domain.User
	characters  map[int64]domain.Character
	inventories map[int64]domain.Inventory
	equipment   map[int64]domain.Equipment
	items       map[int]domain.Item
	nextID      int64
}

// NewStore creates an empty store. txTimeout bounds both waiting for and holding a transaction.
func NewStore(txTimeout time.Duration) *Store {
	if txTimeout <= 0 {
		txTimeout = DefaultTxTimeout
	}
	return &Store{
		sem:         make(chan struct{}, 1),
		txTimeout:   txTimeout,
		users:       make(map[string]domain.User),
		characters:  make(map[int64]domain.Character),
		inventories: make(map[int64]domain.Inventory),
		equipment:   make(map[int64]domain.Equipment),
		items:       make(map[int]domain.Item),
	}
}

// Ping always succeeds; it lets the store stand in for a database pool in health checks
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op
func (s *Store) Close() {}

// ---- repository.Character ----

// GetCharacter returns the committed character
func (s *Store) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.characters[characterID]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

// GetInventory returns the committed inventory, empty when none exists
func (s *Store) GetInventory(ctx context.Context, characterID int64) (*domain.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv := s.inventories[characterID].Clone()
	inv.CharacterID = characterID
	return &inv, nil
}

// GetEquipment returns the committed equipped set, empty when none exists
func (s *Store) GetEquipment(ctx context.Context, characterID int64) (*domain.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	eq := s.equipment[characterID].Clone()
	eq.CharacterID = characterID
	return &eq, nil
}

// BeginTx waits for the transaction slot, honouring ctx and the store timeout
func (s *Store) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	timer := time.NewTimer(s.txTimeout)
	defer timer.Stop()

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to begin transaction: %w", ctx.Err())
	case <-timer.C:
		return nil, fmt.Errorf("%w: waiting for transaction slot", domain.ErrTxTimeout)
	}

	return &Tx{
		store:       s,
		deadline:    time.Now().Add(s.txTimeout),
		characters:  make(map[int64]*domain.Character),
		inventories: make(map[int64]domain.Inventory),
		equipment:   make(map[int64]domain.Equipment),
	}, nil
}

// ---- repository.Item ----

// ListItems returns the catalog ordered by item code
func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items, nil
}

// GetItem returns one catalog entry
func (s *Store) GetItem(ctx context.Context, itemCode int) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[itemCode]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemCode)
	}
	return &item, nil
}

// CreateItem adds a catalog entry
func (s *Store) CreateItem(ctx context.Context, item domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.Code]; ok {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateItemCode, item.Code)
	}
	s.items[item.Code] = item
	return nil
}

// UpdateItem changes name and stats only
func (s *Store) UpdateItem(ctx context.Context, item domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.items[item.Code]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, item.Code)
	}
	existing.Name = item.Name
	existing.Stats = item.Stats
	s.items[item.Code] = existing
	return nil
}

// DeleteItem removes a catalog entry
func (s *Store) DeleteItem(ctx context.Context, itemCode int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[itemCode]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemCode)
	}
	delete(s.items, itemCode)
	return nil
}

// SeedItems inserts items whose code is not present yet
func (s *Store) SeedItems(ctx context.Context, items []domain.Item) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inserted := 0
	for _, item := range items {
		if _, ok := s.items[item.Code]; ok {
			continue
		}
		s.items[item.Code] = item
		inserted++
	}
	return inserted, nil
}

// ---- repository.User ----

// CreateUser adds an account
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.LoginID == user.LoginID {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateLoginID, user.LoginID)
		}
	}
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

// GetUserByID finds an account by id
func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// GetUserByLoginID finds an account by login id
func (s *Store) GetUserByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.LoginID == loginID {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// UpdateRefreshToken stores the current refresh token
func (s *Store) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefreshToken = refreshToken
	s.users[userID] = u
	return nil
}
