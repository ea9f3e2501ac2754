package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Armory_Go/internal/database"
	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testPool, terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) (pool *pgxpool.Pool, terminate func()) {
	// testcontainers panics when Docker is unavailable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
			pool, terminate = nil, nil
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, nil
	}
	terminate = func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return nil, terminate
	}

	pool, err = database.NewPool(connStr, 10, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return nil, terminate
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return nil, terminate
	}
	return pool, terminate
}

func requireDatabase(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}

func createTestUser(t *testing.T, ctx context.Context, loginID string) *domain.User {
	t.Helper()
	user := &domain.User{ID: uuid.NewString(), LoginID: loginID, PasswordHash: "hash", Name: loginID, Age: 20}
	require.NoError(t, NewUserRepository(testPool).CreateUser(ctx, user))
	return user
}

func createTestCharacter(t *testing.T, ctx context.Context, repo *CharacterRepository, userID, name string) domain.Character {
	t.Helper()
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	c := domain.NewCharacter(userID, name)
	require.NoError(t, tx.CreateCharacter(ctx, &c))
	require.NoError(t, tx.UpdateInventory(ctx, domain.Inventory{CharacterID: c.ID}))
	require.NoError(t, tx.UpdateEquipment(ctx, domain.Equipment{CharacterID: c.ID}))
	require.NoError(t, tx.Commit(ctx))
	return c
}

func TestUserRepository_Integration(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	repo := NewUserRepository(testPool)

	user := createTestUser(t, ctx, "alice")
	assert.False(t, user.CreatedAt.IsZero())

	dup := &domain.User{ID: uuid.NewString(), LoginID: "alice", PasswordHash: "x", Name: "Other"}
	assert.ErrorIs(t, repo.CreateUser(ctx, dup), domain.ErrDuplicateLoginID)

	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, "refresh-1"))
	got, err := repo.GetUserByLoginID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "refresh-1", got.RefreshToken)

	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, ""))
	got, err = repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RefreshToken)

	_, err = repo.GetUserByLoginID(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestItemRepository_Integration(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	repo := NewItemRepository(testPool)

	sword := domain.Item{Code: 9001, Name: "Test Sword", Type: domain.ItemTypeWeapon, Stats: domain.Stats{ATK: 7}, Price: 300}
	require.NoError(t, repo.CreateItem(ctx, sword))
	assert.ErrorIs(t, repo.CreateItem(ctx, sword), domain.ErrDuplicateItemCode)

	got, err := repo.GetItem(ctx, 9001)
	require.NoError(t, err)
	assert.Equal(t, sword, *got)

	sword.Name = "Renamed Sword"
	sword.Stats = domain.Stats{ATK: 8, STR: 1}
	sword.Price = 1 // not editable
	require.NoError(t, repo.UpdateItem(ctx, sword))
	got, err = repo.GetItem(ctx, 9001)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Sword", got.Name)
	assert.Equal(t, domain.Stats{ATK: 8, STR: 1}, got.Stats)
	assert.Equal(t, int64(300), got.Price)

	inserted, err := repo.SeedItems(ctx, []domain.Item{sword, {Code: 9002, Name: "Test Ring", Type: domain.ItemTypeRing, Price: 10}})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	require.NoError(t, repo.DeleteItem(ctx, 9002))
	assert.ErrorIs(t, repo.DeleteItem(ctx, 9002), domain.ErrItemNotFound)
	_, err = repo.GetItem(ctx, 9002)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	overpriced := domain.Item{Code: 9003, Name: "Crown", Type: domain.ItemTypeHat, Price: domain.MaxItemPrice + 1}
	assert.ErrorIs(t, repo.CreateItem(ctx, overpriced), domain.ErrInvalidInput)
	top := domain.Item{Code: 9004, Name: "Crown", Type: domain.ItemTypeHat, Price: domain.MaxItemPrice}
	assert.NoError(t, repo.CreateItem(ctx, top))
}

func TestCharacterRepository_Integration(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	repo := NewCharacterRepository(testPool, 2*time.Second)
	items := NewItemRepository(testPool)
	require.NoError(t, items.CreateItem(ctx, domain.Item{Code: 9101, Name: "Cap", Type: domain.ItemTypeHat, Price: 100, Stats: domain.Stats{DEX: 1}}))

	user := createTestUser(t, ctx, "charowner")
	c := createTestCharacter(t, ctx, repo, user.ID, "Integration Hero")

	t.Run("duplicate name", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		dup := domain.NewCharacter(user.ID, "Integration Hero")
		assert.ErrorIs(t, tx.CreateCharacter(ctx, &dup), domain.ErrDuplicateName)
	})

	t.Run("unknown owner", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		orphan := domain.NewCharacter(uuid.NewString(), "Orphan")
		assert.ErrorIs(t, tx.CreateCharacter(ctx, &orphan), domain.ErrUserNotFound)
	})

	t.Run("rollback discards changes", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		locked, err := tx.GetCharacterForUpdate(ctx, c.ID)
		require.NoError(t, err)
		locked.Money = 1
		require.NoError(t, tx.UpdateCharacter(ctx, *locked))
		require.NoError(t, tx.Rollback(ctx))
		assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)

		got, err := repo.GetCharacter(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(domain.DefaultCharacterMoney), got.Money)
	})

	t.Run("inventory equipment and catalog inside one tx", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		catalog, err := tx.GetItemsByCodes(ctx, []int{9101, 424242})
		require.NoError(t, err)
		require.Len(t, catalog, 1)

		// Codes past the INTEGER range must not be truncated onto a real item
		wide, err := tx.GetItemsByCodes(ctx, []int{1<<32 + 9101})
		require.NoError(t, err)
		assert.Empty(t, wide)

		inv, err := tx.GetInventoryForUpdate(ctx, c.ID)
		require.NoError(t, err)
		updated, err := domain.AddItems(*inv, []domain.BatchEntry{{ItemCode: 9101, Count: 3}}, catalog)
		require.NoError(t, err)
		require.NoError(t, tx.UpdateInventory(ctx, updated))

		eq, err := tx.GetEquipmentForUpdate(ctx, c.ID)
		require.NoError(t, err)
		equipped, err := domain.Equip(*eq, catalog[9101])
		require.NoError(t, err)
		require.NoError(t, tx.UpdateEquipment(ctx, equipped))
		require.NoError(t, tx.Commit(ctx))

		inv, err = repo.GetInventory(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, inv.Stacks, 1)
		assert.Equal(t, 3, inv.Stacks[0].Count)
		assert.Equal(t, "Cap", inv.Stacks[0].Name)

		eq, err = repo.GetEquipment(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, eq.Items, 1)
		assert.Equal(t, domain.Stats{DEX: 1}, eq.Items[0].Stats)
	})

	t.Run("negative balance violates the check constraint", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		locked, err := tx.GetCharacterForUpdate(ctx, c.ID)
		require.NoError(t, err)
		locked.Money = -1
		assert.ErrorIs(t, tx.UpdateCharacter(ctx, *locked), domain.ErrInsufficientFunds)
	})

	t.Run("concurrent credits are serialized by the row lock", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tx, err := repo.BeginTx(ctx)
				if !assert.NoError(t, err) {
					return
				}
				defer repository.SafeRollback(ctx, tx)
				locked, err := tx.GetCharacterForUpdate(ctx, c.ID)
				if !assert.NoError(t, err) {
					return
				}
				credited, err := locked.Credit(10)
				if !assert.NoError(t, err) {
					return
				}
				assert.NoError(t, tx.UpdateCharacter(ctx, credited))
				assert.NoError(t, tx.Commit(ctx))
			}()
		}
		wg.Wait()

		got, err := repo.GetCharacter(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(domain.DefaultCharacterMoney+100), got.Money)
	})

	t.Run("delete cascades", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)
		require.NoError(t, tx.DeleteCharacter(ctx, c.ID))
		require.NoError(t, tx.Commit(ctx))

		_, err = repo.GetCharacter(ctx, c.ID)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

		var remaining int
		require.NoError(t, testPool.QueryRow(ctx,
			`SELECT (SELECT COUNT(*) FROM character_inventory WHERE character_id = $1) + (SELECT COUNT(*) FROM character_equipment WHERE character_id = $1)`,
			c.ID).Scan(&remaining))
		assert.Zero(t, remaining)
	})
}
