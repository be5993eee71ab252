package events

import (
	"context"
	"sync"
)

// MemoryPublisher implements Publisher by collecting events in memory.
// Useful for tests and deployments without a broker.
type MemoryPublisher struct {
	events map[string][]ProcessedEvent
	mu     sync.RWMutex
}

// NewMemoryPublisher creates a new in-memory publisher
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{
		events: make(map[string][]ProcessedEvent),
	}
}

// Publish records an event under the given subject
func (p *MemoryPublisher) Publish(ctx context.Context, subject string, event ProcessedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events[subject] = append(p.events[subject], event)
	return nil
}

// Events returns the events published to a subject (for testing)
func (p *MemoryPublisher) Events(subject string) []ProcessedEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]ProcessedEvent, len(p.events[subject]))
	copy(out, p.events[subject])
	return out
}

// Close discards all recorded events
func (p *MemoryPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = make(map[string][]ProcessedEvent)
	return nil
}
