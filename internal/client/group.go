package client

import (
	"context"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

// groupClient dispatches the operations of one catalogue group by name, so a
// replaced catalogue entry is picked up without code changes.
type groupClient struct {
	client *Client
	group  string
}

func newGroupClient(client *Client, group string) groupClient {
	return groupClient{
		client: client,
		group:  group,
	}
}

func (g groupClient) call(ctx context.Context, operation string, params web3api.Params) (*web3api.Result, error) {
	return g.client.Call(ctx, g.group, operation, params)
}
