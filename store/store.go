// Package store provides the persisted key-value slots that survive restarts:
// per-client session and cart state. Backends are interchangeable; callers
// hold the interface, never a concrete store.
package store

import "context"

// KV is a minimal key-value store. Get returns (nil, nil) when the key is
// absent so callers can distinguish "no state yet" from a store failure.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SessionKey is the slot holding a client's token pair and identity.
func SessionKey(clientID string) string {
	return "session:client:" + clientID
}

// CartKey is the slot holding a client's cart line items.
func CartKey(clientID string) string {
	return "cart:client:" + clientID
}
