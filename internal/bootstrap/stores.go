package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Armory_Go/internal/catalog"
	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/database"
	"github.com/osse101/Armory_Go/internal/database/memory"
	"github.com/osse101/Armory_Go/internal/database/postgres"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Stores holds the repository implementations selected by STORE_DRIVER
type Stores struct {
	Pool       database.Pool
	Users      repository.User
	Items      repository.Item
	Characters repository.Character
}

// InitializeStores opens the configured store. For PostgreSQL it connects,
// pings, and applies pending migrations before returning.
func InitializeStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		slog.Warn(LogMsgMemoryStoreWarned)
		store := memory.NewStore(cfg.DBTxTimeout)
		slog.Info(LogMsgStoreInitialized, "driver", cfg.StoreDriver)
		return &Stores{
			Pool:       store,
			Users:      store,
			Items:      store,
			Characters: store,
		}, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, StorePingTimeout)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedPingDB, err)
		}

		if err := database.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}

		slog.Info(LogMsgStoreInitialized, "driver", cfg.StoreDriver, "db_host", cfg.DBHost, "db_name", cfg.DBName)
		return &Stores{
			Pool:       pool,
			Users:      postgres.NewUserRepository(pool),
			Items:      postgres.NewItemRepository(pool),
			Characters: postgres.NewCharacterRepository(pool, cfg.DBTxTimeout),
		}, nil
	}

	return nil, fmt.Errorf(ErrMsgUnknownDriver, cfg.StoreDriver)
}

// SeedCatalog validates the seed file at path and inserts items whose codes
// are not in the store yet. A missing file is not an error.
func SeedCatalog(ctx context.Context, items repository.Item, path string) (int, error) {
	loader, err := catalog.NewLoader()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}

	inserted, err := loader.Seed(ctx, items, path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}
	return inserted, nil
}
