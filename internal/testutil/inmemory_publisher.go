package testutil

import (
	"context"
	"sync"

	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/types"
)

// InMemoryEventPublisher records published events instead of sending them
type InMemoryEventPublisher struct {
	mu     sync.RWMutex
	events []*events.Event
	Err    error
}

var _ events.Publisher = (*InMemoryEventPublisher)(nil)

func NewInMemoryEventPublisher() *InMemoryEventPublisher {
	return &InMemoryEventPublisher{}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, eventName string, payload interface{}) error {
	if p.Err != nil {
		return p.Err
	}
	event, err := events.NewEvent(eventName, types.GetUserID(ctx), payload)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// GetEvents returns all published events in order
func (p *InMemoryEventPublisher) GetEvents() []*events.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*events.Event, len(p.events))
	copy(out, p.events)
	return out
}

// EventsNamed returns the published events with the given name
func (p *InMemoryEventPublisher) EventsNamed(name string) []*events.Event {
	var out []*events.Event
	for _, e := range p.GetEvents() {
		if e.EventName == name {
			out = append(out, e)
		}
	}
	return out
}

func (p *InMemoryEventPublisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
