package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and subscribes the
// metrics collector to every event type.
func InitializeEventSystem() (*event.MemoryBus, error) {
	bus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllTypes))
	return bus, nil
}
