package ports

import "github.com/peekhq/peek/internal/domain"

// ItemGenerator produces synthetic preview items
type ItemGenerator interface {
	// Generate returns count items numbered after offset
	Generate(offset, count int) []domain.PreviewItem
}
