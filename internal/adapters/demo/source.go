package demo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
)

// DefaultTotal is the size of the demo collection
const DefaultTotal = 100

// ErrSimulatedFailure is returned by a Source configured to fail
var ErrSimulatedFailure = errors.New("simulated backend failure")

// Source serves generated items with artificial latency, standing in for a
// remote backend
type Source struct {
	// Delay is applied to every FetchPage call
	Delay time.Duration
	// FailEvery makes every Nth fetch fail; zero disables failures
	FailEvery int
	Total     int

	fetches   atomic.Int64
	generator ports.ItemGenerator
}

// Verify interface compliance at compile time
var _ ports.ItemSource = (*Source)(nil)

// NewSource creates a Source of total items
func NewSource(generator ports.ItemGenerator, total int, delay time.Duration) *Source {
	if total < 0 {
		total = DefaultTotal
	}
	return &Source{
		Delay:     delay,
		Total:     total,
		generator: generator,
	}
}

// Count returns the configured total
func (s *Source) Count(ctx context.Context) (int, error) {
	return s.Total, nil
}

// FetchPage waits for Delay, then returns up to count items from offset
func (s *Source) FetchPage(ctx context.Context, offset, count int) ([]domain.PreviewItem, error) {
	if offset < 0 {
		return nil, fmt.Errorf("invalid page offset %d", offset)
	}

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	n := s.fetches.Add(1)
	if s.FailEvery > 0 && n%int64(s.FailEvery) == 0 {
		logging.Logger.Warn("Demo source failing fetch", "offset", offset, "fetch", n)
		return nil, ErrSimulatedFailure
	}

	if offset >= s.Total {
		return nil, nil
	}
	count = min(count, s.Total-offset)

	logging.Logger.Debug("Demo source serving page", "offset", offset, "count", count)
	return s.generator.Generate(offset, count), nil
}
