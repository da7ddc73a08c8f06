// Package checkout converts a cart into a server-side order through a fixed
// gate sequence. Each gate short-circuits: no order request is ever issued
// with a missing or expired session, an empty cart, or without confirmation.
package checkout

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/cart"
	"github.com/bctDaGithub/orchid-storefront/clients"
	apperrors "github.com/bctDaGithub/orchid-storefront/errors"
	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// OrderPlacer is the slice of the backend client checkout needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, token string, req *models.CreateOrderRequest) (*models.Order, error)
}

type Orchestrator struct {
	sessions *session.Manager
	carts    *cart.Store
	api      OrderPlacer
	log      *zap.Logger
	now      func() time.Time
}

func NewOrchestrator(sessions *session.Manager, carts *cart.Store, api OrderPlacer, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		sessions: sessions,
		carts:    carts,
		api:      api,
		log:      log,
		now:      time.Now,
	}
}

// PlaceOrder runs the gate sequence and submits the order. On success the
// cart is cleared, which broadcasts exactly one change event. On failure the
// cart is left intact; only session state may be destroyed.
func (o *Orchestrator) PlaceOrder(ctx context.Context, clientID string, confirmed bool) (*models.Order, error) {
	sess, err := o.sessions.Fresh(ctx, clientID, o.now())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if sess == nil {
		return nil, apperrors.ErrLoginRequired
	}

	items := o.carts.Load(ctx, clientID)
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	if !confirmed {
		return nil, apperrors.ErrNotConfirmed
	}

	req := &models.CreateOrderRequest{
		AccountID: sess.UserID,
		Items:     make([]models.OrderItemRequest, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, models.OrderItemRequest{
			OrchidID: item.OrchidID,
			Quantity: item.Quantity,
		})
	}

	order, err := o.api.CreateOrder(ctx, sess.AccessToken, req)
	if err != nil {
		if clients.IsUnauthorized(err) {
			o.log.Warn("Order rejected as unauthorized, destroying session",
				zap.String("client_id", clientID),
				zap.Int64("account_id", sess.UserID),
			)
			_ = o.sessions.Clear(ctx, clientID)
			return nil, apperrors.Wrap(apperrors.ErrSessionRejected, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrOrderFailed, err)
	}

	if err := o.carts.Clear(ctx, clientID); err != nil {
		// The order exists server-side; a stale local cart is the lesser harm.
		o.log.Error("Order placed but cart clear failed", zap.String("client_id", clientID), zap.Error(err))
	}

	o.log.Info("Order placed",
		zap.String("client_id", clientID),
		zap.Int64("account_id", sess.UserID),
		zap.Int("line_items", len(items)),
	)
	return order, nil
}
