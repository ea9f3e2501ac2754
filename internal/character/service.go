// Package character creates, deletes and rewards characters.
package character

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Created holds the three records written by CreateCharacter
type Created struct {
	Character domain.Character `json:"character"`
	Inventory domain.Inventory `json:"inventory"`
	Equipment domain.Equipment `json:"equipment"`
}

// EarnResult is the outcome of EarnMoney
type EarnResult struct {
	Earned  int64 `json:"earnedMoney"`
	Balance int64 `json:"balance"`
}

// Service defines character lifecycle operations
type Service interface {
	CreateCharacter(ctx context.Context, userID, name string) (*Created, error)
	// DeleteCharacter reports domain.ErrCharacterNotFound for characters the user does not own
	DeleteCharacter(ctx context.Context, userID string, characterID int64) error
	EarnMoney(ctx context.Context, userID string, characterID int64) (*EarnResult, error)
	// GetCharacterSummary includes money only when viewerID owns the character.
	// An empty viewerID is an anonymous view.
	GetCharacterSummary(ctx context.Context, characterID int64, viewerID string) (*domain.CharacterSummary, error)
}

type service struct {
	repo      repository.Character
	publisher event.Publisher
}

// NewService creates a character service. publisher may be nil.
func NewService(repo repository.Character, publisher event.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) CreateCharacter(ctx context.Context, userID, name string) (*Created, error) {
	name, err := domain.NormalizeName(name)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character := domain.NewCharacter(userID, name)
	if err := tx.CreateCharacter(ctx, &character); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateCharacterFailed, err)
	}

	inventory := domain.Inventory{CharacterID: character.ID, Stacks: []domain.Stack{}}
	if err := tx.UpdateInventory(ctx, inventory); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateInventoryFailed, err)
	}
	equipment := domain.Equipment{CharacterID: character.ID, Items: []domain.Item{}}
	if err := tx.UpdateEquipment(ctx, equipment); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateEquipmentFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishAfterCommit(ctx, s.publisher, event.NewCharacterCreatedEvent(character))
	logger.FromContext(ctx).Info(LogMsgCharacterCreated, "character_id", character.ID, "user_id", userID)

	return &Created{Character: character, Inventory: inventory, Equipment: equipment}, nil
}

func (s *service) DeleteCharacter(ctx context.Context, userID string, characterID int64) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return err
	}
	if !character.IsOwnedBy(userID) {
		return fmt.Errorf(ErrMsgNotOwnedFmt, domain.ErrCharacterNotFound, characterID)
	}

	if err := tx.DeleteCharacter(ctx, characterID); err != nil {
		return fmt.Errorf(ErrMsgDeleteCharacterFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishAfterCommit(ctx, s.publisher, event.NewCharacterDeletedEvent(characterID, userID))
	logger.FromContext(ctx).Info(LogMsgCharacterDeleted, "character_id", characterID, "user_id", userID)
	return nil
}

func (s *service) EarnMoney(ctx context.Context, userID string, characterID int64) (*EarnResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if !character.IsOwnedBy(userID) {
		return nil, fmt.Errorf(ErrMsgNotOwnedFmt, domain.ErrForbidden, characterID)
	}

	updated, err := character.Credit(domain.EarnMoneyReward)
	if err != nil {
		return nil, err
	}
	if err := tx.UpdateCharacter(ctx, updated); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateCharacterFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishAfterCommit(ctx, s.publisher, event.NewMoneyEarnedEvent(characterID, domain.EarnMoneyReward, updated.Money))
	logger.FromContext(ctx).Info(LogMsgMoneyEarned, "character_id", characterID, "balance", updated.Money)

	return &EarnResult{Earned: domain.EarnMoneyReward, Balance: updated.Money}, nil
}

func (s *service) GetCharacterSummary(ctx context.Context, characterID int64, viewerID string) (*domain.CharacterSummary, error) {
	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	summary := character.Summary(viewerID)
	return &summary, nil
}
