package cart

import (
	"context"
	"sync"

	"github.com/bctDaGithub/orchid-storefront/events"
	"github.com/bctDaGithub/orchid-storefront/models"
)

// BadgeCounter keeps the cart badge (sum of quantities) per client. It is a
// bus consumer: on every cart change it re-reads the persisted cart rather
// than trusting any payload, so the count can never drift from the store.
type BadgeCounter struct {
	mu     sync.RWMutex
	counts map[string]int
	carts  *Store
}

func NewBadgeCounter(carts *Store, bus *events.Bus) *BadgeCounter {
	b := &BadgeCounter{
		counts: make(map[string]int),
		carts:  carts,
	}
	bus.Subscribe(TopicUpdated, b.refresh)
	return b
}

func (b *BadgeCounter) refresh(clientID string) {
	count := models.CartCount(b.carts.Load(context.Background(), clientID))
	b.mu.Lock()
	b.counts[clientID] = count
	b.mu.Unlock()
}

// Count returns the badge for a client, reading through to the store the
// first time a client is seen.
func (b *BadgeCounter) Count(clientID string) int {
	b.mu.RLock()
	count, ok := b.counts[clientID]
	b.mu.RUnlock()
	if ok {
		return count
	}
	b.refresh(clientID)
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.counts[clientID]
}
