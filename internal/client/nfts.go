package client

import (
	"context"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

// NFTsClient implements web3api.NFTsClient.
type NFTsClient struct {
	groupClient
}

// NewNFTsClient creates a new NFTs client.
func NewNFTsClient(client *Client) *NFTsClient {
	return &NFTsClient{groupClient: newGroupClient(client, web3api.GroupNFTs)}
}

// GetNFTs implements web3api.NFTsClient.GetNFTs. The result is paginated;
// use Result.Next or a web3api.Pager for the following pages.
func (c *NFTsClient) GetNFTs(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpGetNFTs, params)
}

// GetNFTsCount implements web3api.NFTsClient.GetNFTsCount.
func (c *NFTsClient) GetNFTsCount(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpGetNFTsCount, params)
}

// ClaimNFT implements web3api.NFTsClient.ClaimNFT.
func (c *NFTsClient) ClaimNFT(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpClaimNFT, params)
}

// WithdrawNFT implements web3api.NFTsClient.WithdrawNFT.
func (c *NFTsClient) WithdrawNFT(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpWithdrawNFT, params)
}
