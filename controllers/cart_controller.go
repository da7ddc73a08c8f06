package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/cart"
	apperrors "github.com/bctDaGithub/orchid-storefront/errors"
	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// OrchidGetter is used for the availability gate on add-to-cart.
type OrchidGetter interface {
	Orchid(ctx context.Context, token string, id int64) (*models.Orchid, error)
}

type CartController struct {
	carts    *cart.Store
	badge    *cart.BadgeCounter
	catalog  OrchidGetter
	sessions *session.Manager
	log      *zap.Logger
}

func NewCartController(carts *cart.Store, badge *cart.BadgeCounter, catalog OrchidGetter, sessions *session.Manager, log *zap.Logger) *CartController {
	return &CartController{carts: carts, badge: badge, catalog: catalog, sessions: sessions, log: log}
}

// Get returns the current cart and its total.
func (cc *CartController) Get(c *gin.Context) {
	clientID, err := middleware.GetClientID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	items := cc.carts.Load(c.Request.Context(), clientID)
	c.JSON(http.StatusOK, gin.H{"items": items, "total": models.CartTotal(items)})
}

type addItemRequest struct {
	OrchidID   int64  `json:"orchidId" binding:"required"`
	OrchidName string `json:"orchidName" binding:"required"`
	Price      int64  `json:"price" binding:"required,min=1"`
	OrchidURL  string `json:"orchidUrl"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// Add puts an orchid in the cart, merging quantity when it is already there.
// Unavailable orchids are rejected; availability lookup failures do not block
// the add, the server re-validates at checkout anyway.
func (cc *CartController) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item payload."})
		return
	}

	clientID, err := middleware.GetClientID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	token := ""
	if sess, err := cc.sessions.Fresh(c.Request.Context(), clientID, time.Now()); err == nil && sess != nil {
		token = sess.AccessToken
	}
	if orchid, err := cc.catalog.Orchid(c.Request.Context(), token, req.OrchidID); err != nil {
		cc.log.Warn("Availability check failed, allowing add", zap.Int64("orchid_id", req.OrchidID), zap.Error(err))
	} else if !orchid.Available {
		c.JSON(http.StatusConflict, gin.H{"error": "This orchid is currently unavailable."})
		return
	}

	item := models.CartItem{
		OrchidID:   req.OrchidID,
		OrchidName: req.OrchidName,
		Price:      req.Price,
		OrchidURL:  req.OrchidURL,
	}
	items, err := cc.carts.Add(c.Request.Context(), clientID, item, req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": models.CartTotal(items)})
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity replaces a line's quantity. Values below 1 leave the cart
// unchanged.
func (cc *CartController) SetQuantity(c *gin.Context) {
	orchidID, err := strconv.ParseInt(c.Param("orchid_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orchid ID."})
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity payload."})
		return
	}

	clientID, err := middleware.GetClientID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	items, err := cc.carts.SetQuantity(c.Request.Context(), clientID, orchidID, req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": models.CartTotal(items)})
}

// Remove deletes a line from the cart; removing an absent line is fine.
func (cc *CartController) Remove(c *gin.Context) {
	orchidID, err := strconv.ParseInt(c.Param("orchid_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orchid ID."})
		return
	}

	clientID, err := middleware.GetClientID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	items, err := cc.carts.Remove(c.Request.Context(), clientID, orchidID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": models.CartTotal(items)})
}

// Clear empties the cart.
func (cc *CartController) Clear(c *gin.Context) {
	clientID, err := middleware.GetClientID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	if err := cc.carts.Clear(c.Request.Context(), clientID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared."})
}

// Count serves the cart badge from the bus-fed counter.
func (cc *CartController) Count(c *gin.Context) {
	clientID, err := middleware.GetClientID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": cc.badge.Count(clientID)})
}
