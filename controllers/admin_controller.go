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

// AdminAPI is the slice of the backend client the admin panels use.
type AdminAPI interface {
	Accounts(ctx context.Context, token string) ([]models.Account, error)
	BlockAccount(ctx context.Context, token string, req models.UpdateAccountRequest) error
	UnblockAccount(ctx context.Context, token string, req models.UpdateAccountRequest) error
	CreateOrchid(ctx context.Context, token string, req models.CreateOrchidRequest) error
	UpdateOrchid(ctx context.Context, token string, req models.CreateOrchidRequest) error
	EnableOrchid(ctx context.Context, token string, orchidID int64) error
	DisableOrchid(ctx context.Context, token string, orchidID int64) error
	Orders(ctx context.Context, token string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status models.OrderStatus) error
}

type AdminController struct {
	api      AdminAPI
	sessions *session.Manager
	log      *zap.Logger
}

func NewAdminController(api AdminAPI, sessions *session.Manager, log *zap.Logger) *AdminController {
	return &AdminController{api: api, sessions: sessions, log: log}
}

// ---- users panel ----

func (ac *AdminController) Users(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	accounts, err := ac.api.Accounts(c.Request.Context(), sess.AccessToken)
	if err != nil {
		respondUpstream(c, ac.sessions, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

type toggleUserRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

func (ac *AdminController) BlockUser(c *gin.Context) {
	ac.toggleUser(c, true)
}

func (ac *AdminController) UnblockUser(c *gin.Context) {
	ac.toggleUser(c, false)
}

func (ac *AdminController) toggleUser(c *gin.Context, block bool) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID."})
		return
	}

	var req toggleUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User name and email are required."})
		return
	}

	payload := models.UpdateAccountRequest{
		ID:          userID,
		UserName:    req.UserName,
		Email:       req.Email,
		IsAvailable: !block,
	}

	if block {
		err = ac.api.BlockAccount(c.Request.Context(), sess.AccessToken, payload)
	} else {
		err = ac.api.UnblockAccount(c.Request.Context(), sess.AccessToken, payload)
	}
	if err != nil {
		respondUpstream(c, ac.sessions, err)
		return
	}

	action := "unblocked"
	if block {
		action = "blocked"
	}
	ac.log.Info("User "+action, zap.Int64("user_id", userID), zap.Int64("admin_id", sess.UserID))
	c.JSON(http.StatusOK, gin.H{"message": "User " + action + "."})
}

// ---- orchids panel ----

func (ac *AdminController) CreateOrchid(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	var req models.CreateOrchidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Orchid name and a positive price are required."})
		return
	}
	req.OrchidID = 0

	if err := ac.api.CreateOrchid(c.Request.Context(), sess.AccessToken, req); err != nil {
		respondUpstream(c, ac.sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Orchid created."})
}

func (ac *AdminController) UpdateOrchid(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	orchidID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orchid ID."})
		return
	}

	var req models.CreateOrchidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Orchid name and a positive price are required."})
		return
	}
	req.OrchidID = orchidID

	if err := ac.api.UpdateOrchid(c.Request.Context(), sess.AccessToken, req); err != nil {
		respondUpstream(c, ac.sessions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orchid updated."})
}

func (ac *AdminController) EnableOrchid(c *gin.Context) {
	ac.toggleOrchid(c, true)
}

func (ac *AdminController) DisableOrchid(c *gin.Context) {
	ac.toggleOrchid(c, false)
}

func (ac *AdminController) toggleOrchid(c *gin.Context, enable bool) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	orchidID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orchid ID."})
		return
	}

	if enable {
		err = ac.api.EnableOrchid(c.Request.Context(), sess.AccessToken, orchidID)
	} else {
		err = ac.api.DisableOrchid(c.Request.Context(), sess.AccessToken, orchidID)
	}
	if err != nil {
		respondUpstream(c, ac.sessions, err)
		return
	}

	action := "disabled"
	if enable {
		action = "enabled"
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orchid " + action + "."})
}

// ---- orders panel ----

// adminOrderView pairs an order with the transitions the panel may offer.
type adminOrderView struct {
	models.Order
	Total        int64                `json:"total"`
	NextStatuses []models.OrderStatus `json:"nextStatuses"`
}

func (ac *AdminController) AllOrders(c *gin.Context) {
	sess, err := middleware.GetSession(c)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrLoginRequired)
		return
	}

	orders, err := ac.api.Orders(c.Request.Context(), sess.AccessToken)
	if err != nil {
		respondUpstream(c, ac.sessions, err)
		return
	}

	views := make([]adminOrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, adminOrderView{
			Order:        order,
			Total:        order.Total(),
			NextStatuses: models.NextStatuses(order.Status),
		})
	}
	c.JSON(http.StatusOK, views)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus requests a transition for any order. Only known statuses
// pass; whether the transition is legal from the current state stays the
// server's decision.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
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

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status."})
		return
	}

	if err := ac.api.UpdateOrderStatus(c.Request.Context(), sess.AccessToken, orderID, req.Status); err != nil {
		respondUpstream(c, ac.sessions, err)
		return
	}

	ac.log.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", string(req.Status)),
		zap.Int64("admin_id", sess.UserID),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Order updated to " + string(req.Status) + "."})
}
