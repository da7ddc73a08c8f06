package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/cart"
	"github.com/bctDaGithub/orchid-storefront/events"
)

func TestBadgeCounter_TracksSumOfQuantities(t *testing.T) {
	kv := newMemKV()
	bus := events.NewBus()
	s := cart.NewStore(kv, bus, zap.NewNop())
	badge := cart.NewBadgeCounter(s, bus)
	ctx := context.Background()

	assert.Equal(t, 0, badge.Count("c1"))

	_, _ = s.Add(ctx, "c1", item(1, "Phalaenopsis", 150000), 2)
	_, _ = s.Add(ctx, "c1", item(2, "Cattleya", 200000), 3)
	assert.Equal(t, 5, badge.Count("c1"))

	_, _ = s.Remove(ctx, "c1", 2)
	assert.Equal(t, 2, badge.Count("c1"))

	_ = s.Clear(ctx, "c1")
	assert.Equal(t, 0, badge.Count("c1"))
}

func TestBadgeCounter_ReadsThroughForUnseenClient(t *testing.T) {
	kv := newMemKV()
	seedBus := events.NewBus()
	s := cart.NewStore(kv, seedBus, zap.NewNop())
	_, _ = s.Add(context.Background(), "c1", item(1, "Phalaenopsis", 150000), 4)

	// Counter attached after the cart already existed.
	badge := cart.NewBadgeCounter(s, events.NewBus())
	assert.Equal(t, 4, badge.Count("c1"))
}
