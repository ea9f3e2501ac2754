package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	db        *pgxpool.Pool
	txTimeout time.Duration
}

// NewCharacterRepository creates a new CharacterRepository.
// txTimeout bounds lock waits and statements inside every transaction; zero disables it.
func NewCharacterRepository(db *pgxpool.Pool, txTimeout time.Duration) *CharacterRepository {
	return &CharacterRepository{db: db, txTimeout: txTimeout}
}

// CharacterTx implements repository.CharacterTx
type CharacterTx struct {
	tx pgx.Tx
}

// BeginTx starts a READ COMMITTED transaction with lock and statement timeouts
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}

	if r.txTimeout > 0 {
		ms := r.txTimeout.Milliseconds()
		// SET LOCAL does not take bind parameters
		for _, setting := range []string{"lock_timeout", "statement_timeout"} {
			if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL %s = %d", setting, ms)); err != nil {
				_ = tx.Rollback(ctx)
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSetTimeout, err)
			}
		}
	}

	return &CharacterTx{tx: tx}, nil
}

// GetCharacter reads a character without locking
func (r *CharacterRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	return getCharacter(ctx, r.db, characterID, false)
}

// GetInventory reads a character's inventory without locking
func (r *CharacterRepository) GetInventory(ctx context.Context, characterID int64) (*domain.Inventory, error) {
	return getInventoryInternal(ctx, r.db, characterID, false)
}

// GetEquipment reads a character's equipped set without locking
func (r *CharacterRepository) GetEquipment(ctx context.Context, characterID int64) (*domain.Equipment, error) {
	return getEquipmentInternal(ctx, r.db, characterID, false)
}

// Commit commits the transaction
func (t *CharacterTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrapError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *CharacterTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}

// GetCharacterForUpdate locks and returns the character row
func (t *CharacterTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	return getCharacter(ctx, t.tx, characterID, true)
}

// CreateCharacter inserts the character and fills in its ID and CreatedAt
func (t *CharacterTx) CreateCharacter(ctx context.Context, character *domain.Character) error {
	userUUID, err := parseUserUUID(character.UserID)
	if err != nil {
		return err
	}
	stats, err := json.Marshal(character.Stats)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalStat, err)
	}

	err = t.tx.QueryRow(ctx, `
		INSERT INTO characters (user_id, name, health, stats, money)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING character_id, created_at
	`, userUUID, character.Name, character.Health, stats, character.Money).Scan(&character.ID, &character.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case PgErrorCodeUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicateName, character.Name)
		case PgErrorCodeForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, character.UserID)
		}
		return wrapError(ErrMsgFailedToCreateCharacter, err)
	}
	return nil
}

// UpdateCharacter persists health, stats and money
func (t *CharacterTx) UpdateCharacter(ctx context.Context, character domain.Character) error {
	stats, err := json.Marshal(character.Stats)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalStat, err)
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE characters SET health = $2, stats = $3, money = $4
		WHERE character_id = $1
	`, character.ID, character.Health, stats, character.Money)
	if err != nil {
		return wrapError(ErrMsgFailedToUpdateCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// DeleteCharacter removes the character; inventory and equipment cascade
func (t *CharacterTx) DeleteCharacter(ctx context.Context, characterID int64) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM characters WHERE character_id = $1`, characterID)
	if err != nil {
		return wrapError(ErrMsgFailedToDeleteCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// GetInventoryForUpdate locks and returns the inventory document
func (t *CharacterTx) GetInventoryForUpdate(ctx context.Context, characterID int64) (*domain.Inventory, error) {
	return getInventoryInternal(ctx, t.tx, characterID, true)
}

// UpdateInventory writes the inventory document
func (t *CharacterTx) UpdateInventory(ctx context.Context, inventory domain.Inventory) error {
	return updateInventory(ctx, t.tx, inventory)
}

// GetEquipmentForUpdate locks and returns the equipped set
func (t *CharacterTx) GetEquipmentForUpdate(ctx context.Context, characterID int64) (*domain.Equipment, error) {
	return getEquipmentInternal(ctx, t.tx, characterID, true)
}

// UpdateEquipment writes the equipped set, creating the row if needed
func (t *CharacterTx) UpdateEquipment(ctx context.Context, equipment domain.Equipment) error {
	return updateEquipment(ctx, t.tx, equipment)
}

// GetItemsByCodes reads catalog entries inside the transaction
func (t *CharacterTx) GetItemsByCodes(ctx context.Context, codes []int) (domain.Catalog, error) {
	return getItemsByCodes(ctx, t.tx, codes)
}
