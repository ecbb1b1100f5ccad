package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/ports"
)

const (
	DefaultLookahead = 2
	DefaultPageSize  = 10
)

// PaginationLoader fetches pages from a PageFetcher, one at a time
type PaginationLoader struct {
	fetcher   ports.PageFetcher
	inflight  *semaphore.Weighted
	loading   atomic.Bool
	lookahead int
	pageSize  int
}

// NewPaginationLoader creates a loader. fetcher may be nil, in which case
// the loader never fetches. A lookahead below 1 is raised to 1 so the last
// loaded item always triggers a fetch.
func NewPaginationLoader(fetcher ports.PageFetcher, pageSize, lookahead int) *PaginationLoader {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if lookahead < 1 {
		lookahead = 1
	}
	return &PaginationLoader{
		fetcher:   fetcher,
		inflight:  semaphore.NewWeighted(1),
		lookahead: lookahead,
		pageSize:  pageSize,
	}
}

// HasFetcher reports whether the loader can fetch at all
func (l *PaginationLoader) HasFetcher() bool {
	return l.fetcher != nil
}

// IsLoading reports whether a fetch is outstanding
func (l *PaginationLoader) IsLoading() bool {
	return l.loading.Load()
}

// ShouldFetch applies the trigger policy for the given cursor
func (l *PaginationLoader) ShouldFetch(cursor int, c *domain.Collection) bool {
	if l.fetcher == nil || c == nil || !c.CanGrow() {
		return false
	}
	return domain.InLookahead(cursor, c.Len(), l.lookahead)
}

// NextPageSize is the page size clamped to what is left in the collection
func (l *PaginationLoader) NextPageSize(c *domain.Collection) int {
	n := l.pageSize
	if remaining := c.Remaining(); remaining != domain.UnknownTotal && remaining < n {
		n = remaining
	}
	return n
}

// RequestMore fetches count items at offset and hands them to apply.
// It returns domain.ErrAlreadyLoading without fetching when another request
// is outstanding. Loading is cleared after apply returns, on success and on
// failure. Fetch errors are wrapped with domain.ErrFetchFailed and apply is
// not called.
func (l *PaginationLoader) RequestMore(
	ctx context.Context,
	offset int,
	count int,
	apply func(items []domain.PreviewItem),
) error {
	if l.fetcher == nil {
		return fmt.Errorf("%w: no page fetcher configured", domain.ErrFetchFailed)
	}
	if !l.inflight.TryAcquire(1) {
		return domain.ErrAlreadyLoading
	}
	l.loading.Store(true)
	defer func() {
		l.loading.Store(false)
		l.inflight.Release(1)
	}()

	items, err := l.fetcher.FetchPage(ctx, offset, count)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	apply(items)
	return nil
}
