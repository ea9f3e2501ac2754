package metrics

import (
	"context"

	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics.
// Undecodable payloads are logged and skipped; metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CharacterCreated:
		CharactersCreated.Inc()
	case event.CharacterDeleted:
		CharactersDeleted.Inc()
	case event.MoneyEarned:
		err = recordMoneyEarned(evt)
	case event.ItemEquipped, event.ItemUnequipped:
		err = recordEquipment(evt)
	case event.ItemsBought, event.ItemsSold:
		err = recordTrade(evt)
	case event.ItemsGranted, event.ItemsRevoked:
		err = recordInventory(evt)
	}
	if err != nil {
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordMoneyEarned(evt event.Event) error {
	p, err := event.DecodePayload[event.MoneyEarnedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	MoneyEarned.WithLabelValues(SourceReward).Add(float64(p.Amount))
	return nil
}

func recordEquipment(evt event.Event) error {
	p, err := event.DecodePayload[event.EquipmentPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	if evt.Type == event.ItemEquipped {
		ItemsEquipped.WithLabelValues(string(p.ItemType)).Inc()
	} else {
		ItemsUnequipped.WithLabelValues(string(p.ItemType)).Inc()
	}
	return nil
}

func recordTrade(evt event.Event) error {
	p, err := event.DecodePayload[event.TradePayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	for _, line := range p.Lines {
		if evt.Type == event.ItemsBought {
			ItemsBought.WithLabelValues(line.ItemName).Add(float64(line.Count))
		} else {
			ItemsSold.WithLabelValues(line.ItemName).Add(float64(line.Count))
		}
	}
	if evt.Type == event.ItemsBought {
		MoneySpent.Add(float64(p.Total))
	} else {
		MoneyEarned.WithLabelValues(SourceSale).Add(float64(p.Total))
	}
	return nil
}

func recordInventory(evt event.Event) error {
	p, err := event.DecodePayload[event.InventoryPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	total := 0
	for _, entry := range p.Entries {
		total += entry.Count
	}
	if evt.Type == event.ItemsGranted {
		ItemsGranted.Add(float64(total))
	} else {
		ItemsRevoked.Add(float64(total))
	}
	return nil
}
