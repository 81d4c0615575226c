package client

import (
	"context"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

// MetadataClient implements web3api.MetadataClient.
type MetadataClient struct {
	groupClient
}

// NewMetadataClient creates a new metadata client.
func NewMetadataClient(client *Client) *MetadataClient {
	return &MetadataClient{groupClient: newGroupClient(client, web3api.GroupMetadata)}
}

// GetMetadata implements web3api.MetadataClient.GetMetadata.
func (c *MetadataClient) GetMetadata(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpGetMetadata, params)
}

// UpdateMetadata implements web3api.MetadataClient.UpdateMetadata.
func (c *MetadataClient) UpdateMetadata(ctx context.Context, params web3api.Params) (*web3api.Result, error) {
	return c.call(ctx, web3api.OpUpdateMetadata, params)
}
