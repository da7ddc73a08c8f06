package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bctDaGithub/orchid-storefront/models"
)

// Login exchanges credentials for a token pair. Identity is decoded
// client-side from the access token, not returned here.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.TokenPair, error) {
	var pair models.TokenPair
	if err := c.do(ctx, http.MethodPost, "/command/account/login", "", req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Register creates an account. It does not log the new account in; callers
// go through Login afterwards so the session always comes from a login.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/command/account", "", req, nil)
}

func (c *Client) UpdateAccount(ctx context.Context, token string, req models.UpdateAccountRequest) error {
	return c.do(ctx, http.MethodPut, "/command/account", token, req, nil)
}

func (c *Client) BlockAccount(ctx context.Context, token string, req models.UpdateAccountRequest) error {
	return c.do(ctx, http.MethodPut, "/command/account/block", token, req, nil)
}

func (c *Client) UnblockAccount(ctx context.Context, token string, req models.UpdateAccountRequest) error {
	return c.do(ctx, http.MethodPut, "/command/account/unblock", token, req, nil)
}

func (c *Client) Accounts(ctx context.Context, token string) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.do(ctx, http.MethodGet, "/query/account", token, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) Account(ctx context.Context, token string, id int64) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/query/account/%d", id), token, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
