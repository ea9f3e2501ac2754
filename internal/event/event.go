package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a committed state change
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Event types, published after the owning transaction commits
const (
	CharacterCreated Type = "character.created"
	CharacterDeleted Type = "character.deleted"
	MoneyEarned      Type = "character.money_earned"

	ItemEquipped   Type = "equipment.equipped"
	ItemUnequipped Type = "equipment.unequipped"

	ItemsBought Type = "economy.items_bought"
	ItemsSold   Type = "economy.items_sold"

	ItemsGranted Type = "inventory.granted"
	ItemsRevoked Type = "inventory.revoked"
)

// AllTypes lists every event type the services publish
var AllTypes = []Type{
	CharacterCreated,
	CharacterDeleted,
	MoneyEarned,
	ItemEquipped,
	ItemUnequipped,
	ItemsBought,
	ItemsSold,
	ItemsGranted,
	ItemsRevoked,
}

// CharacterPayloadV1 is the typed payload for character lifecycle events
type CharacterPayloadV1 struct {
	CharacterID int64  `json:"character_id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name,omitempty"`
}

// MoneyEarnedPayloadV1 is the typed payload for earn-money events
type MoneyEarnedPayloadV1 struct {
	CharacterID int64 `json:"character_id"`
	Amount      int64 `json:"amount"`
	Balance     int64 `json:"balance"`
}

// EquipmentPayloadV1 is the typed payload for equip and unequip events
type EquipmentPayloadV1 struct {
	CharacterID int64           `json:"character_id"`
	ItemCode    int             `json:"item_code"`
	ItemName    string          `json:"item_name"`
	ItemType    domain.ItemType `json:"item_type"`
}

// TradeLineV1 is one item line of a buy or sell
type TradeLineV1 struct {
	ItemCode int    `json:"item_code"`
	ItemName string `json:"item_name"`
	Count    int    `json:"count"`
	Amount   int64  `json:"amount"`
}

// TradePayloadV1 is the typed payload for buy and sell events
type TradePayloadV1 struct {
	CharacterID int64         `json:"character_id"`
	Lines       []TradeLineV1 `json:"lines"`
	Total       int64         `json:"total"`
	Balance     int64         `json:"balance"`
}

// InventoryPayloadV1 is the typed payload for admin grant and revoke events
type InventoryPayloadV1 struct {
	CharacterID int64               `json:"character_id"`
	Entries     []domain.BatchEntry `json:"entries"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}

// NewCharacterCreatedEvent creates a character created event
func NewCharacterCreatedEvent(c domain.Character) Event {
	return newEvent(CharacterCreated, CharacterPayloadV1{CharacterID: c.ID, UserID: c.UserID, Name: c.Name})
}

// NewCharacterDeletedEvent creates a character deleted event
func NewCharacterDeletedEvent(characterID int64, userID string) Event {
	return newEvent(CharacterDeleted, CharacterPayloadV1{CharacterID: characterID, UserID: userID})
}

// NewMoneyEarnedEvent creates an earn-money event
func NewMoneyEarnedEvent(characterID, amount, balance int64) Event {
	return newEvent(MoneyEarned, MoneyEarnedPayloadV1{CharacterID: characterID, Amount: amount, Balance: balance})
}

// NewEquipmentEvent creates an equip or unequip event
func NewEquipmentEvent(t Type, characterID int64, item domain.Item) Event {
	return newEvent(t, EquipmentPayloadV1{
		CharacterID: characterID,
		ItemCode:    item.Code,
		ItemName:    item.Name,
		ItemType:    item.Type,
	})
}

// NewTradeEvent creates a buy or sell event
func NewTradeEvent(t Type, characterID int64, lines []TradeLineV1, total, balance int64) Event {
	return newEvent(t, TradePayloadV1{CharacterID: characterID, Lines: lines, Total: total, Balance: balance})
}

// NewInventoryEvent creates a grant or revoke event
func NewInventoryEvent(t Type, characterID int64, entries []domain.BatchEntry) Event {
	return newEvent(t, InventoryPayloadV1{CharacterID: characterID, Entries: entries})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishAfterCommit publishes evt and logs a failure instead of returning it.
// The state change it describes is already durable.
func PublishAfterCommit(ctx context.Context, p Publisher, evt Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
