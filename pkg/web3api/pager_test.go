package web3api_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

var errFlaky = errors.New("flaky")

// offsetInvoker serves total items in pages of pageSize using offset paging.
type offsetInvoker struct {
	total    int
	pageSize int
	failAt   int
	calls    []web3api.Params
}

func (i *offsetInvoker) Invoke(ctx context.Context, endpoint web3api.Endpoint, params web3api.Params) (*web3api.Result, error) {
	i.calls = append(i.calls, params)

	if i.failAt > 0 && len(i.calls) == i.failAt {
		return nil, errFlaky
	}

	offset, _ := params["offset"].(int)
	page := offset / i.pageSize

	result := &web3api.Result{PageInfo: web3api.PageInfo{Page: &page, PageSize: i.pageSize, Total: i.total}}

	next, ok := web3api.NextParams(&result.PageInfo, params)
	if ok {
		result.SetNext(web3api.Call{Endpoint: endpoint, Params: next})
	}

	return result, nil
}

var nftsEndpoint = web3api.Endpoint{Group: "nfts", Name: "getNfts", Method: "GET", URL: "/nfts/account/:uid"}

func TestPager_All(t *testing.T) {
	t.Parallel()

	invoker := &offsetInvoker{total: 25, pageSize: 10}
	pager := web3api.NewPager(invoker, web3api.Call{Endpoint: nftsEndpoint, Params: web3api.Params{"uid": "u-1", "limit": 10}})

	results, err := pager.All(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, 3, pager.Pages())
	assert.False(t, pager.HasNext())

	assert.Nil(t, invoker.calls[0]["offset"])
	assert.Equal(t, 10, invoker.calls[1]["offset"])
	assert.Equal(t, 20, invoker.calls[2]["offset"])

	_, err = pager.Next(context.Background())
	require.ErrorIs(t, err, web3api.ErrNoMorePages)
}

func TestPager_MaxPages(t *testing.T) {
	t.Parallel()

	invoker := &offsetInvoker{total: 100, pageSize: 10}
	pager := web3api.NewPager(invoker, web3api.Call{Endpoint: nftsEndpoint, Params: web3api.Params{"limit": 10}})

	results, err := pager.All(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.True(t, pager.HasNext())
}

func TestPager_ErrorKeepsPosition(t *testing.T) {
	t.Parallel()

	invoker := &offsetInvoker{total: 30, pageSize: 10, failAt: 2}
	pager := web3api.NewPager(invoker, web3api.Call{Endpoint: nftsEndpoint, Params: web3api.Params{"limit": 10}})

	_, err := pager.Next(context.Background())
	require.NoError(t, err)

	_, err = pager.Next(context.Background())
	require.ErrorIs(t, err, errFlaky)
	assert.Contains(t, err.Error(), "fetching page 2")
	assert.Equal(t, 1, pager.Pages())

	// Retrying repeats the same page.
	_, err = pager.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, invoker.calls[1], invoker.calls[2])
}
