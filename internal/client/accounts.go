package client

import (
	"context"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

// AccountsClient implements web3api.AccountsClient.
type AccountsClient struct {
	groupClient
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(client *Client) *AccountsClient {
	return &AccountsClient{groupClient: newGroupClient(client, web3api.GroupAccounts)}
}

// CreateAccount implements web3api.AccountsClient.CreateAccount.
// The account payload goes under params["data"].
func (c *AccountsClient) CreateAccount(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpCreateAccount, params)
}

// ActivateAccount implements web3api.AccountsClient.ActivateAccount.
func (c *AccountsClient) ActivateAccount(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpActivateAccount, params)
}

// GetAccount implements web3api.AccountsClient.GetAccount. params["uid"] is required.
func (c *AccountsClient) GetAccount(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpGetAccount, params)
}
