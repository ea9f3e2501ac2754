// Package catalog manages item definitions: admin writes, cached reads and
// the seed file loaded at startup.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Cache defaults used when Config leaves them unset
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// Service defines catalog reads and admin writes.
// Reads may be served from cache; transactional engines read the store directly.
type Service interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, itemCode int) (*domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error)
	// UpdateItem replaces stats and, when name is non-empty, the name.
	// Type and price are fixed once an item exists.
	UpdateItem(ctx context.Context, itemCode int, name string, stats domain.Stats) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemCode int) error
}

// Config sizes the read cache
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo  repository.Item
	cache *itemCache
	group singleflight.Group

	// generation is bumped on every write so a fetch that raced a write is not cached
	generation atomic.Uint64
}

// NewService creates a catalog service
func NewService(repo repository.Item, cfg Config) Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newItemCache(cfg.CacheSize, cfg.CacheTTL),
	}
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.cached(ctx, cacheKeyList, func(ctx context.Context) ([]domain.Item, error) {
		return s.repo.ListItems(ctx)
	})
}

func (s *service) GetItem(ctx context.Context, itemCode int) (*domain.Item, error) {
	if itemCode <= 0 {
		return nil, fmt.Errorf("%w: item code must be positive", domain.ErrInvalidInput)
	}
	items, err := s.cached(ctx, itemKey(itemCode), func(ctx context.Context) ([]domain.Item, error) {
		item, err := s.repo.GetItem(ctx, itemCode)
		if err != nil {
			return nil, err
		}
		return []domain.Item{*item}, nil
	})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// cached serves key from the LRU, collapsing concurrent misses into one load
func (s *service) cached(ctx context.Context, key string, load func(context.Context) ([]domain.Item, error)) ([]domain.Item, error) {
	if items, ok := s.cache.get(key); ok {
		return items, nil
	}

	gen := s.generation.Load()
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if s.generation.Load() == gen {
			s.cache.set(key, items)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return copyItems(v.([]domain.Item)), nil
}

func (s *service) invalidate(code int) {
	s.generation.Add(1)
	s.cache.invalidate(code)
}

func (s *service) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(item.Code)

	logger.FromContext(ctx).Info(LogMsgItemCreated, "item_code", item.Code, "item_type", item.Type)
	return &item, nil
}

func (s *service) UpdateItem(ctx context.Context, itemCode int, name string, stats domain.Stats) (*domain.Item, error) {
	existing, err := s.repo.GetItem(ctx, itemCode)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if name = strings.TrimSpace(name); name != "" {
		updated.Name = name
	}
	updated.Stats = stats

	if err := s.repo.UpdateItem(ctx, updated); err != nil {
		return nil, err
	}
	s.invalidate(itemCode)

	logger.FromContext(ctx).Info(LogMsgItemUpdated, "item_code", itemCode)
	return &updated, nil
}

func (s *service) DeleteItem(ctx context.Context, itemCode int) error {
	if err := s.repo.DeleteItem(ctx, itemCode); err != nil {
		return err
	}
	s.invalidate(itemCode)

	logger.FromContext(ctx).Info(LogMsgItemDeleted, "item_code", itemCode)
	return nil
}
