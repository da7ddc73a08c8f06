// Package cart holds the client-persisted cart: an ordered list of line items
// keyed by orchid ID. Every mutation persists first, then broadcasts a change
// event with no payload; interested consumers re-read the persisted cart.
package cart

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	apperrors "github.com/bctDaGithub/orchid-storefront/errors"
	"github.com/bctDaGithub/orchid-storefront/events"
	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/store"
)

// TopicUpdated is published after every cart mutation.
const TopicUpdated = "cart.updated"

type Store struct {
	kv  store.KV
	bus *events.Bus
	log *zap.Logger
}

func NewStore(kv store.KV, bus *events.Bus, log *zap.Logger) *Store {
	return &Store{kv: kv, bus: bus, log: log}
}

// Load reads the persisted cart. Absence and parse failures both yield an
// empty cart; a broken slot must never crash the caller.
func (s *Store) Load(ctx context.Context, clientID string) []models.CartItem {
	data, err := s.kv.Get(ctx, store.CartKey(clientID))
	if err != nil {
		s.log.Warn("Failed to load cart, defaulting to empty", zap.String("client_id", clientID), zap.Error(err))
		return []models.CartItem{}
	}
	if data == nil {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("Corrupt cart state, defaulting to empty", zap.String("client_id", clientID), zap.Error(err))
		return []models.CartItem{}
	}
	return items
}

// Add merges qty into an existing line for the same orchid, or appends a new
// line at the end. At most one line per orchid ID ever exists.
func (s *Store) Add(ctx context.Context, clientID string, item models.CartItem, qty int) ([]models.CartItem, error) {
	if qty < 1 {
		return nil, apperrors.New(400, "Quantity must be at least 1.", nil)
	}

	items := s.Load(ctx, clientID)
	merged := false
	for i := range items {
		if items[i].OrchidID == item.OrchidID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = qty
		items = append(items, item)
	}

	if err := s.save(ctx, clientID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetQuantity replaces the quantity on an existing line. Quantities below 1
// are a no-op; removal is an explicit operation, not a zero write.
func (s *Store) SetQuantity(ctx context.Context, clientID string, orchidID int64, qty int) ([]models.CartItem, error) {
	items := s.Load(ctx, clientID)
	if qty < 1 {
		return items, nil
	}

	changed := false
	for i := range items {
		if items[i].OrchidID == orchidID {
			items[i].Quantity = qty
			changed = true
			break
		}
	}
	if !changed {
		return items, nil
	}

	if err := s.save(ctx, clientID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove filters the line out. Removing an absent orchid is a no-op.
func (s *Store) Remove(ctx context.Context, clientID string, orchidID int64) ([]models.CartItem, error) {
	items := s.Load(ctx, clientID)

	kept := items[:0:0]
	for _, item := range items {
		if item.OrchidID != orchidID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return items, nil
	}

	if err := s.save(ctx, clientID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context, clientID string) error {
	return s.save(ctx, clientID, []models.CartItem{})
}

func (s *Store) save(ctx context.Context, clientID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, store.CartKey(clientID), data); err != nil {
		s.log.Error("Failed to persist cart", zap.String("client_id", clientID), zap.Error(err))
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.bus.Publish(TopicUpdated, clientID)
	return nil
}
