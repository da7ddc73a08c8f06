package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bctDaGithub/orchid-storefront/models"
)

func (c *Client) Orchids(ctx context.Context, token string) ([]models.Orchid, error) {
	var orchids []models.Orchid
	if err := c.do(ctx, http.MethodGet, "/query/orchid", token, nil, &orchids); err != nil {
		return nil, err
	}
	return orchids, nil
}

func (c *Client) Orchid(ctx context.Context, token string, id int64) (*models.Orchid, error) {
	var orchid models.Orchid
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/query/orchid/%d", id), token, nil, &orchid); err != nil {
		return nil, err
	}
	return &orchid, nil
}

func (c *Client) CreateOrchid(ctx context.Context, token string, req models.CreateOrchidRequest) error {
	return c.do(ctx, http.MethodPost, "/command/orchid", token, req, nil)
}

func (c *Client) UpdateOrchid(ctx context.Context, token string, req models.CreateOrchidRequest) error {
	return c.do(ctx, http.MethodPut, "/command/orchid/update", token, req, nil)
}

// EnableOrchid and DisableOrchid toggle catalog availability.
func (c *Client) EnableOrchid(ctx context.Context, token string, orchidID int64) error {
	return c.do(ctx, http.MethodPut, "/command/orchid/enable", token, map[string]int64{"orchidId": orchidID}, nil)
}

func (c *Client) DisableOrchid(ctx context.Context, token string, orchidID int64) error {
	return c.do(ctx, http.MethodPut, "/command/orchid/disable", token, map[string]int64{"orchidId": orchidID}, nil)
}
