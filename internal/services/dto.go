package services

import "github.com/peekhq/peek/internal/domain"

// PreviewOptions configures a PreviewService
type PreviewOptions struct {
	AlertRetention domain.AlertRetention
	AutoShowAlert  bool
	Lookahead      int
	PageSize       int
}

// PreviewState is a snapshot of the preview session for rendering
type PreviewState struct {
	AutoShowAlert bool
	CurrentItem   *domain.PreviewItem
	Cursor        int
	HasNext       bool
	HasPrevious   bool
	IsLoading     bool
	IsOpen        bool
	LoadedCount   int
	ShowAlert     bool
	TotalKnown    int
}

// CatalogSeedParams contains parameters for seeding the catalog
type CatalogSeedParams struct {
	Count   int
	Replace bool
}

// FindResult is a fuzzy match against the catalog
type FindResult struct {
	Item           domain.PreviewItem
	MatchedIndexes []int
	Score          int
}
