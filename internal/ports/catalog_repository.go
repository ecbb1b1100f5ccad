package ports

import (
	"context"

	"github.com/peekhq/peek/internal/domain"
)

// CatalogReader reads stored preview items
type CatalogReader interface {
	ItemSource
	Get(ctx context.Context, id string) (*domain.PreviewItem, error)
	List(ctx context.Context) ([]domain.PreviewItem, error)
}

// CatalogWriter adds and removes stored preview items
type CatalogWriter interface {
	Add(ctx context.Context, items []domain.PreviewItem) error
	Clear(ctx context.Context) error
}

// CatalogRepository is the composite interface
type CatalogRepository interface {
	CatalogReader
	CatalogWriter
	Close() error
}
