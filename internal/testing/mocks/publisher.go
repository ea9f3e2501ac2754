package mocks

import (
	"context"
	"sync"

	"github.com/osse101/Armory_Go/internal/event"
)

// EventRecorder is an event.Publisher that keeps everything it is given
type EventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

// Publish records evt
func (r *EventRecorder) Publish(ctx context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

// Events returns a copy of the recorded events
func (r *EventRecorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

// Types returns the recorded event types in publish order
func (r *EventRecorder) Types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]event.Type, len(r.events))
	for i, evt := range r.events {
		types[i] = evt.Type
	}
	return types
}
