package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bctDaGithub/orchid-storefront/models"
)

func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/query/order", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) OrdersByAccount(ctx context.Context, token string, accountID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/query/order/account/%d", accountID), token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits the checkout payload. The backend builds the order from
// its own orchid data; the response body may be empty.
func (c *Client) CreateOrder(ctx context.Context, token string, req *models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/command/order", token, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus requests a transition. Legality from the current state is
// the server's call; the client only limits what it offers.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status models.OrderStatus) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/command/order/%d/%s", orderID, status), token, nil, nil)
}
