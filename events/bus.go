// Package events carries change notifications between independently mounted
// consumers. Events deliberately have no payload beyond the client ID:
// subscribers re-read the persisted store, so the store stays authoritative
// and no listener can drift from persisted state.
package events

import "sync"

// Handler reacts to an event for one client's state.
type Handler func(clientID string)

// Bus is an in-process broadcast bus. Publish runs handlers synchronously in
// subscription order, mirroring a single event loop.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

func (b *Bus) Publish(topic, clientID string) {
	b.mu.RLock()
	handlers := b.handlers[topic]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(clientID)
	}
}
