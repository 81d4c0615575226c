package web3api

import (
	"context"
	"fmt"
)

// Pager walks a chain of paginated results, one Invoke per page. It is not
// safe for concurrent use: each page advances the server-side cursor or offset.
type Pager struct {
	invoker Invoker
	next    *Call
	pages   int
}

// NewPager creates a pager whose first page is call.
func NewPager(invoker Invoker, call Call) *Pager {
	return &Pager{
		invoker: invoker,
		next:    &call,
	}
}

// HasNext reports whether another page can be fetched.
func (p *Pager) HasNext() bool {
	return p.next != nil
}

// Pages returns the number of pages fetched so far.
func (p *Pager) Pages() int {
	return p.pages
}

// Next fetches the following page. On error the pager stays on the same page,
// so calling Next again repeats the request.
func (p *Pager) Next(ctx context.Context) (*Result, error) {
	if p.next == nil {
		return nil, ErrNoMorePages
	}

	result, err := p.invoker.Invoke(ctx, p.next.Endpoint, p.next.Params)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", p.pages+1, err)
	}

	p.pages++
	p.next = nil

	if call, ok := result.Next(); ok {
		p.next = &call
	}

	return result, nil
}

// All fetches the remaining pages, at most maxPages of them when maxPages is
// positive.
func (p *Pager) All(ctx context.Context, maxPages int) ([]*Result, error) {
	var results []*Result

	for p.HasNext() {
		if maxPages > 0 && len(results) >= maxPages {
			break
		}

		result, err := p.Next(ctx)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}
