// Package eventbus provides a minimal in-process publish/subscribe bus for
// domain events.
package eventbus

import (
	"context"
	"log/slog"
	"sync"
)

// Event is implemented by all domain events.
type Event interface {
	Type() string
}

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler func(context.Context, Event))
}

// Memory is a synchronous in-memory Bus. Handlers run on the publishing
// goroutine.
type Memory struct {
	mu       sync.RWMutex
	handlers map[string][]func(context.Context, Event)
}

// NewMemory creates an empty in-memory bus.
func NewMemory() *Memory {
	return &Memory{handlers: make(map[string][]func(context.Context, Event))}
}

// Publish delivers the event to every handler subscribed to its type.
func (b *Memory) Publish(ctx context.Context, event Event) error {
	slog.Debug("eventbus publish", "event_type", event.Type())
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers[event.Type()] {
		handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (b *Memory) Subscribe(eventType string, handler func(context.Context, Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
