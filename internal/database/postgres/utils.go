package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/Armory_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}
	return u, nil
}

// pgErrorCode returns the SQLSTATE of err, or "" if it is not a server error
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapError attaches context to a query error, translating timeouts and
// check failures to domain errors. Only the balance check means insufficient
// funds; any other check rejects the input.
func wrapError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	switch pgErr.Code {
	case PgErrorCodeLockNotAvailable, PgErrorCodeQueryCanceled:
		return fmt.Errorf("%w: %s: %v", domain.ErrTxTimeout, msg, err)
	case PgErrorCodeCheckViolation:
		if pgErr.ConstraintName == ConstraintMoneyNonNegative {
			return fmt.Errorf("%w: %s: %v", domain.ErrInsufficientFunds, msg, err)
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

const characterColumns = `character_id, user_id::text, name, health, stats, money, created_at`

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var c domain.Character
	var stats []byte
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Health, &stats, &c.Money, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, wrapError(ErrMsgFailedToGetCharacter, err)
	}
	if err := json.Unmarshal(stats, &c.Stats); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}
	return &c, nil
}

func getCharacter(ctx context.Context, q querier, characterID int64, forUpdate bool) (*domain.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE character_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return scanCharacter(q.QueryRow(ctx, query, characterID))
}

func getInventoryInternal(ctx context.Context, q querier, characterID int64, forUpdate bool) (*domain.Inventory, error) {
	query := `SELECT inventory_data FROM character_inventory WHERE character_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var data []byte
	if err := q.QueryRow(ctx, query, characterID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Inventory{CharacterID: characterID, Stacks: []domain.Stack{}}, nil
		}
		return nil, wrapError(ErrMsgFailedToGetInventory, err)
	}

	var inventory domain.Inventory
	if err := json.Unmarshal(data, &inventory); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalInventory, err)
	}
	inventory.CharacterID = characterID
	if inventory.Stacks == nil {
		inventory.Stacks = []domain.Stack{}
	}
	return &inventory, nil
}

func updateInventory(ctx context.Context, q querier, inventory domain.Inventory) error {
	if inventory.Stacks == nil {
		inventory.Stacks = []domain.Stack{}
	}
	data, err := json.Marshal(inventory)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalInventory, err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO character_inventory (character_id, inventory_data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (character_id) DO UPDATE
		SET inventory_data = EXCLUDED.inventory_data, updated_at = NOW()
	`, inventory.CharacterID, data)
	if err != nil {
		return wrapError(ErrMsgFailedToUpdateInventory, err)
	}
	return nil
}

func getEquipmentInternal(ctx context.Context, q querier, characterID int64, forUpdate bool) (*domain.Equipment, error) {
	query := `SELECT equipment_data FROM character_equipment WHERE character_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var data []byte
	if err := q.QueryRow(ctx, query, characterID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Equipment{CharacterID: characterID, Items: []domain.Item{}}, nil
		}
		return nil, wrapError(ErrMsgFailedToGetEquipment, err)
	}

	var equipment domain.Equipment
	if err := json.Unmarshal(data, &equipment); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalEquipment, err)
	}
	equipment.CharacterID = characterID
	if equipment.Items == nil {
		equipment.Items = []domain.Item{}
	}
	return &equipment, nil
}

func updateEquipment(ctx context.Context, q querier, equipment domain.Equipment) error {
	if equipment.Items == nil {
		equipment.Items = []domain.Item{}
	}
	data, err := json.Marshal(equipment)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEquipment, err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO character_equipment (character_id, equipment_data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (character_id) DO UPDATE
		SET equipment_data = EXCLUDED.equipment_data, updated_at = NOW()
	`, equipment.CharacterID, data)
	if err != nil {
		return wrapError(ErrMsgFailedToUpdateEquipment, err)
	}
	return nil
}

const itemColumns = `item_code, name, item_type, stats, price`

func scanItem(row pgx.Row) (domain.Item, error) {
	var item domain.Item
	var itemType string
	var stats []byte
	if err := row.Scan(&item.Code, &item.Name, &itemType, &stats, &item.Price); err != nil {
		return domain.Item{}, err
	}
	item.Type = domain.ItemType(itemType)
	if err := json.Unmarshal(stats, &item.Stats); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

func getItemsByCodes(ctx context.Context, q querier, codes []int) (domain.Catalog, error) {
	params := make([]int64, len(codes))
	for i, code := range codes {
		params[i] = int64(code)
	}

	rows, err := q.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE item_code = ANY($1::bigint[])`, params)
	if err != nil {
		return nil, wrapError(ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	catalog := make(domain.Catalog, len(codes))
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
		}
		catalog[item.Code] = item
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(ErrMsgFailedToGetItems, err)
	}
	return catalog, nil
}
