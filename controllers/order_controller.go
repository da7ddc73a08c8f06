package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/bctDaGithub/orchid-storefront/errors"
	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// OrderAPI is the slice of the backend client the order screens use.
type OrderAPI interface {
	OrdersByAccount(ctx context.Context, token string, accountID int64) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status models.OrderStatus) error
}

type OrderController struct {
	api      OrderAPI
	sessions *session.Manager
	log      *zap.Logger
}

func NewOrderController(api OrderAPI, sessions *session.Manager, log *zap.Logger) *OrderController {
	return &OrderController{api: api, sessions: sessions, log: log}
}

// customerOrderView is an order plus what the tracking screen may offer for
// it. Offering is affordance only; the server still validates transitions.
type customerOrderView struct {
	models.Order
	Total     int64 `json:"total"`
	CanCancel bool  `json:"canCancel"`
}

// MyOrders lists the caller's orders, optionally filtered by status.
func (oc *OrderController) MyOrders(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	filter := models.OrderStatus(c.Query("status"))
	if filter != "" && !filter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status filter."})
		return
	}

	orders, err := oc.api.OrdersByAccount(c.Request.Context(), sess.AccessToken, sess.UserID)
	if err != nil {
		respondUpstream(c, oc.sessions, err)
		return
	}

	views := make([]customerOrderView, 0, len(orders))
	for _, order := range orders {
		if filter != "" && order.Status != filter {
			continue
		}
		views = append(views, customerOrderView{
			Order:     order,
			Total:     order.Total(),
			CanCancel: models.CustomerCanCancel(order.Status),
		})
	}
	c.JSON(http.StatusOK, views)
}

// Cancel requests the CANCELLED transition for one of the caller's orders.
func (oc *OrderController) Cancel(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID."})
		return
	}

	if err := oc.api.UpdateOrderStatus(c.Request.Context(), sess.AccessToken, orderID, models.OrderCancelled); err != nil {
		respondUpstream(c, oc.sessions, err)
		return
	}

	oc.log.Info("Order cancelled", zap.Int64("order_id", orderID), zap.Int64("account_id", sess.UserID))
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled."})
}
