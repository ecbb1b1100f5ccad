package ports

import (
	"context"

	"github.com/peekhq/peek/internal/domain"
)

// PageFetcher loads the next page of preview items
type PageFetcher interface {
	// FetchPage returns up to count items starting at offset.
	// Fewer items (possibly none) means the source is exhausted.
	FetchPage(ctx context.Context, offset, count int) ([]domain.PreviewItem, error)
}

// ItemCounter reports how many items a source holds
type ItemCounter interface {
	Count(ctx context.Context) (int, error)
}

// ItemSource is a page fetcher that knows its size
type ItemSource interface {
	ItemCounter
	PageFetcher
}
