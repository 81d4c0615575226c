package web3api_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

type recordingPublisher struct {
	subjects []string
	failOn   int
}

var errPublish = errors.New("publish failed")

func (p *recordingPublisher) Publish(subject string, data []byte) error {
	if p.failOn > 0 && len(p.subjects)+1 == p.failOn {
		return errPublish
	}

	p.subjects = append(p.subjects, subject)

	return nil
}

func TestPublishPages(t *testing.T) {
	t.Parallel()

	t.Run("publishes every page", func(t *testing.T) {
		t.Parallel()

		pager := web3api.NewPager(&offsetInvoker{total: 25, pageSize: 10}, web3api.Call{Endpoint: nftsEndpoint, Params: web3api.Params{"limit": 10}})
		publisher := &recordingPublisher{}

		published, err := web3api.PublishPages(context.Background(), pager, publisher, "game.nfts", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, published)
		assert.Equal(t, []string{"game.nfts", "game.nfts", "game.nfts"}, publisher.subjects)
	})

	t.Run("stops at max pages", func(t *testing.T) {
		t.Parallel()

		pager := web3api.NewPager(&offsetInvoker{total: 25, pageSize: 10}, web3api.Call{Endpoint: nftsEndpoint, Params: web3api.Params{"limit": 10}})

		published, err := web3api.PublishPages(context.Background(), pager, &recordingPublisher{}, "game.nfts", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, published)
	})

	t.Run("publish failure", func(t *testing.T) {
		t.Parallel()

		pager := web3api.NewPager(&offsetInvoker{total: 25, pageSize: 10}, web3api.Call{Endpoint: nftsEndpoint, Params: web3api.Params{"limit": 10}})

		published, err := web3api.PublishPages(context.Background(), pager, &recordingPublisher{failOn: 2}, "game.nfts", 0)
		require.ErrorIs(t, err, errPublish)
		assert.Equal(t, 1, published)
	})

	t.Run("requires publisher", func(t *testing.T) {
		t.Parallel()

		pager := web3api.NewPager(&offsetInvoker{total: 1, pageSize: 1}, web3api.Call{Endpoint: nftsEndpoint})

		_, err := web3api.PublishPages(context.Background(), pager, nil, "game.nfts", 0)
		require.ErrorIs(t, err, web3api.ErrPublisherRequired)
	})
}

func TestNewNATSPublisher_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := web3api.NewNATSPublisher("nats://127.0.0.1:1", nats.Timeout(100*time.Millisecond))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to NATS")
}
