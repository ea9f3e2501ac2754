package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// SafeRollback rolls back a transaction and logs any error.
// Deferred after BeginTx; a no-op once the transaction has committed.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	switch {
	case err == nil:
		metrics.TransactionRollbacks.Inc()
	case errors.Is(err, domain.ErrTxClosed):
	default:
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// LockOwnedCharacter locks characterID for the rest of tx and checks that userID owns it.
// A missing character and one owned by someone else both fail with domain.ErrForbidden.
func LockOwnedCharacter(ctx context.Context, tx CharacterTx, characterID int64, userID string) (*domain.Character, error) {
	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return nil, fmt.Errorf("%w: character %d", domain.ErrForbidden, characterID)
		}
		return nil, err
	}
	if !character.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: character %d", domain.ErrForbidden, characterID)
	}
	return character, nil
}
