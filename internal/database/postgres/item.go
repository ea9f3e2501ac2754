package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Armory_Go/internal/domain"
)

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListItems returns the catalog ordered by item code
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_code`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItem returns a single catalog entry
func (r *ItemRepository) GetItem(ctx context.Context, itemCode int) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_code = $1`, itemCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemCode)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	return &item, nil
}

// CreateItem inserts a catalog entry
func (r *ItemRepository) CreateItem(ctx context.Context, item domain.Item) error {
	stats, err := json.Marshal(item.Stats)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalStat, err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO items (item_code, name, item_type, stats, price)
		VALUES ($1, $2, $3, $4, $5)
	`, item.Code, item.Name, string(item.Type), stats, item.Price)
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateItemCode, item.Code)
		}
		return wrapError(ErrMsgFailedToCreateItem, err)
	}
	return nil
}

// UpdateItem changes the editable fields of an item (name and stats)
func (r *ItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	stats, err := json.Marshal(item.Stats)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalStat, err)
	}

	tag, err := r.db.Exec(ctx, `UPDATE items SET name = $2, stats = $3 WHERE item_code = $1`, item.Code, item.Name, stats)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, item.Code)
	}
	return nil
}

// DeleteItem removes a catalog entry. Owned stacks keep their snapshot.
func (r *ItemRepository) DeleteItem(ctx context.Context, itemCode int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_code = $1`, itemCode)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemCode)
	}
	return nil
}

// SeedItems inserts every item whose code is missing in one batch round trip
func (r *ItemRepository) SeedItems(ctx context.Context, items []domain.Item) (int, error) {
	batch := &pgx.Batch{}
	for _, item := range items {
		stats, err := json.Marshal(item.Stats)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalStat, err)
		}
		batch.Queue(`
			INSERT INTO items (item_code, name, item_type, stats, price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (item_code) DO NOTHING
		`, item.Code, item.Name, string(item.Type), stats, item.Price)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range items {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("%s: %w", ErrMsgFailedToSeedItems, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
