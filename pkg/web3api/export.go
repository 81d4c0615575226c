package web3api

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Publisher sends one message to a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes pages to a NATS server.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url string, options ...nats.Option) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, options...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return &NATSPublisher{conn: conn}, nil
}

// Publish implements Publisher.
func (p *NATSPublisher) Publish(subject string, data []byte) error {
	err := p.conn.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	err := p.conn.Drain()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}

// PublishPages fetches pages from pager and publishes each raw body to
// subject. It stops after maxPages pages when maxPages is positive and
// returns how many pages were published.
func PublishPages(ctx context.Context, pager *Pager, publisher Publisher, subject string, maxPages int) (int, error) {
	if publisher == nil {
		return 0, ErrPublisherRequired
	}

	published := 0

	for pager.HasNext() {
		if maxPages > 0 && published >= maxPages {
			break
		}

		result, err := pager.Next(ctx)
		if err != nil {
			return published, err
		}

		err = publisher.Publish(subject, result.Raw)
		if err != nil {
			return published, err
		}

		published++
	}

	return published, nil
}
