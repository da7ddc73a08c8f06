package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bctDaGithub/orchid-storefront/checkout"
	apperrors "github.com/bctDaGithub/orchid-storefront/errors"
	"github.com/bctDaGithub/orchid-storefront/middleware"
)

type CheckoutController struct {
	orchestrator *checkout.Orchestrator
}

func NewCheckoutController(orchestrator *checkout.Orchestrator) *CheckoutController {
	return &CheckoutController{orchestrator: orchestrator}
}

type checkoutRequest struct {
	Confirm bool `json:"confirm"`
}

// PlaceOrder runs the checkout gate sequence. Confirm stands in for the
// blocking confirmation prompt; without it no order request is issued.
func (cc *CheckoutController) PlaceOrder(c *gin.Context) {
	clientID, err := middleware.GetClientID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout payload."})
		return
	}

	order, err := cc.orchestrator.PlaceOrder(c.Request.Context(), clientID, req.Confirm)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order placed successfully!",
		"order":    order,
		"redirect": "/order-tracking",
	})
}
