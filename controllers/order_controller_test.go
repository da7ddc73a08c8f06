package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/controllers"
	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/models"
	"github.com/bctDaGithub/orchid-storefront/session"
)

// ---- mock order API ----

type mockOrderAPI struct {
	orders       []models.Order
	ordersErr    error
	updatedOrder int64
	updatedTo    models.OrderStatus
	updateCalls  int
	updateErr    error
}

func (m *mockOrderAPI) OrdersByAccount(_ context.Context, _ string, _ int64) ([]models.Order, error) {
	return m.orders, m.ordersErr
}

func (m *mockOrderAPI) Orders(_ context.Context, _ string) ([]models.Order, error) {
	return m.orders, m.ordersErr
}

func (m *mockOrderAPI) UpdateOrderStatus(_ context.Context, _ string, orderID int64, status models.OrderStatus) error {
	m.updateCalls++
	m.updatedOrder = orderID
	m.updatedTo = status
	return m.updateErr
}

func withSession(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClientIDKey, "c1")
		c.Set(middleware.SessionKey, &models.Session{
			Identity:    models.Identity{UserID: 42, Email: "buyer@example.com", Role: role},
			AccessToken: "token",
		})
		c.Next()
	}
}

func orderRouter(api *mockOrderAPI) *gin.Engine {
	sessions := session.NewManager(newMemKV(), zap.NewNop())
	oc := controllers.NewOrderController(api, sessions, zap.NewNop())

	r := gin.New()
	r.Use(withSession(models.RoleCustomer))
	r.GET("/orders", oc.MyOrders)
	r.PUT("/orders/:id/cancel", oc.Cancel)
	return r
}

// ---- tests ----

func TestMyOrders_OffersCancelOnlyWhileCancellable(t *testing.T) {
	api := &mockOrderAPI{orders: []models.Order{
		{ID: 1, AccountID: 42, Status: models.OrderPending},
		{ID: 2, AccountID: 42, Status: models.OrderConfirmed},
		{ID: 3, AccountID: 42, Status: models.OrderCompleted},
		{ID: 4, AccountID: 42, Status: models.OrderCancelled},
	}}
	r := orderRouter(api)

	w := doJSON(r, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var views []struct {
		ID        int64              `json:"id"`
		Status    models.OrderStatus `json:"status"`
		CanCancel bool               `json:"canCancel"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Len(t, views, 4)
	assert.True(t, views[0].CanCancel)
	assert.True(t, views[1].CanCancel)
	assert.False(t, views[2].CanCancel)
	assert.False(t, views[3].CanCancel)
}

func TestMyOrders_StatusFilter(t *testing.T) {
	api := &mockOrderAPI{orders: []models.Order{
		{ID: 1, Status: models.OrderPending},
		{ID: 2, Status: models.OrderCompleted},
	}}
	r := orderRouter(api)

	w := doJSON(r, http.MethodGet, "/orders?status=PENDING", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var views []struct {
		ID int64 `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].ID)

	w = doJSON(r, http.MethodGet, "/orders?status=SHIPPED", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancel_RequestsCancelledTransition(t *testing.T) {
	api := &mockOrderAPI{}
	r := orderRouter(api)

	w := doJSON(r, http.MethodPut, "/orders/7/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), api.updatedOrder)
	assert.Equal(t, models.OrderCancelled, api.updatedTo)
}

func TestAdminUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	api := &mockOrderAPI{}
	sessions := session.NewManager(newMemKV(), zap.NewNop())
	ac := controllers.NewAdminController(&mockAdminAPI{mockOrderAPI: api}, sessions, zap.NewNop())

	r := gin.New()
	r.Use(withSession(models.RoleAdmin))
	r.PUT("/admin/orders/:id/status", ac.UpdateOrderStatus)

	w := doJSON(r, http.MethodPut, "/admin/orders/7/status", gin.H{"status": "SHIPPED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, api.updateCalls, "unknown statuses never reach the backend")

	w = doJSON(r, http.MethodPut, "/admin/orders/7/status", gin.H{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OrderConfirmed, api.updatedTo)
}

func TestAdminAllOrders_IncludesOfferedTransitions(t *testing.T) {
	api := &mockOrderAPI{orders: []models.Order{
		{ID: 1, Status: models.OrderPending},
		{ID: 2, Status: models.OrderCompleted},
	}}
	sessions := session.NewManager(newMemKV(), zap.NewNop())
	ac := controllers.NewAdminController(&mockAdminAPI{mockOrderAPI: api}, sessions, zap.NewNop())

	r := gin.New()
	r.Use(withSession(models.RoleAdmin))
	r.GET("/admin/orders", ac.AllOrders)

	w := doJSON(r, http.MethodGet, "/admin/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var views []struct {
		ID           int64                `json:"id"`
		NextStatuses []models.OrderStatus `json:"nextStatuses"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Equal(t, []models.OrderStatus{models.OrderConfirmed, models.OrderCancelled}, views[0].NextStatuses)
	assert.Empty(t, views[1].NextStatuses, "terminal orders offer nothing")
}

// mockAdminAPI fills the parts of AdminAPI the order panel tests do not hit.
type mockAdminAPI struct {
	*mockOrderAPI
}

func (m *mockAdminAPI) Accounts(_ context.Context, _ string) ([]models.Account, error) {
	return nil, nil
}
func (m *mockAdminAPI) BlockAccount(_ context.Context, _ string, _ models.UpdateAccountRequest) error {
	return nil
}
func (m *mockAdminAPI) UnblockAccount(_ context.Context, _ string, _ models.UpdateAccountRequest) error {
	return nil
}
func (m *mockAdminAPI) CreateOrchid(_ context.Context, _ string, _ models.CreateOrchidRequest) error {
	return nil
}
func (m *mockAdminAPI) UpdateOrchid(_ context.Context, _ string, _ models.CreateOrchidRequest) error {
	return nil
}
func (m *mockAdminAPI) EnableOrchid(_ context.Context, _ string, _ int64) error  { return nil }
func (m *mockAdminAPI) DisableOrchid(_ context.Context, _ string, _ int64) error { return nil }
