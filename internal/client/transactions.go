package client

import (
	"context"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

// TransactionsClient implements web3api.TransactionsClient.
type TransactionsClient struct {
	groupClient
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(client *Client) *TransactionsClient {
	return &TransactionsClient{groupClient: newGroupClient(client, web3api.GroupTransactions)}
}

// GetTransactions implements web3api.TransactionsClient.GetTransactions.
func (c *TransactionsClient) GetTransactions(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpGetTransactions, params)
}

// GetTransactionsConfirmations implements web3api.TransactionsClient.GetTransactionsConfirmations.
func (c *TransactionsClient) GetTransactionsConfirmations(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpGetTransactionsConfirmations, params)
}
