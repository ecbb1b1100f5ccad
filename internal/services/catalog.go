package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
)

// CatalogService manages the stored catalog of preview items
type CatalogService struct {
	generator ports.ItemGenerator
	reader    ports.CatalogReader
	writer    ports.CatalogWriter
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	reader ports.CatalogReader,
	writer ports.CatalogWriter,
	generator ports.ItemGenerator,
) *CatalogService {
	return &CatalogService{
		generator: generator,
		reader:    reader,
		writer:    writer,
	}
}

// Seed adds generated items to the catalog and returns how many were added.
// With Replace set the catalog is cleared first; otherwise numbering
// continues after the existing items.
func (s *CatalogService) Seed(ctx context.Context, params CatalogSeedParams) (int, error) {
	if params.Count <= 0 {
		return 0, fmt.Errorf("seed count must be positive, got %d", params.Count)
	}

	offset := 0
	if params.Replace {
		if err := s.writer.Clear(ctx); err != nil {
			return 0, fmt.Errorf("failed to clear catalog: %w", err)
		}
	} else {
		existing, err := s.reader.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count catalog items: %w", err)
		}
		offset = existing
	}

	items := s.generator.Generate(offset, params.Count)
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return 0, fmt.Errorf("generated item %s is invalid: %w", item.ID, err)
		}
	}

	if err := s.writer.Add(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to add items: %w", err)
	}

	logging.Logger.Info("Catalog seeded", "offset", offset, "added", len(items), "replace", params.Replace)
	return len(items), nil
}

// List returns every item in catalog order
func (s *CatalogService) List(ctx context.Context) ([]domain.PreviewItem, error) {
	items, err := s.reader.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return items, nil
}

// Get returns one item by id
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.PreviewItem, error) {
	item, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s: %w", id, err)
	}
	return item, nil
}

// Count returns the number of stored items
func (s *CatalogService) Count(ctx context.Context) (int, error) {
	n, err := s.reader.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count catalog items: %w", err)
	}
	return n, nil
}

// Clear removes every item
func (s *CatalogService) Clear(ctx context.Context) error {
	if err := s.writer.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}
	logging.Logger.Info("Catalog cleared")
	return nil
}

// titleIndex implements fuzzy.Source over lowercase item titles
type titleIndex struct {
	items       []domain.PreviewItem
	lowerTitles []string
}

func newTitleIndex(items []domain.PreviewItem) *titleIndex {
	idx := &titleIndex{items: items, lowerTitles: make([]string, len(items))}
	for i, item := range items {
		idx.lowerTitles[i] = strings.ToLower(item.Title)
	}
	return idx
}

func (idx *titleIndex) String(i int) string { return idx.lowerTitles[i] }

func (idx *titleIndex) Len() int { return len(idx.items) }

// Find fuzzy-matches query against item titles, best match first.
// limit <= 0 returns every match.
func (s *CatalogService) Find(ctx context.Context, query string, limit int) ([]FindResult, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	matches := fuzzy.FindFrom(query, newTitleIndex(items))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]FindResult, len(matches))
	for i, match := range matches {
		results[i] = FindResult{
			Item:           items[match.Index],
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		}
	}

	logging.Logger.Debug("Catalog search", "query", query, "matches", len(results))
	return results, nil
}

// Suggest returns up to limit titles closest to query by edit distance.
// It backs "did you mean" hints when Find has no matches.
func (s *CatalogService) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	type candidate struct {
		distance int
		title    string
	}
	candidates := make([]candidate, len(items))
	for i, item := range items {
		candidates[i] = candidate{
			distance: fuzzysearch.LevenshteinDistance(query, strings.ToLower(item.Title)),
			title:    item.Title,
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.title
	}
	return titles, nil
}

// FirstPage loads the opening batch from a source together with its total
func FirstPage(ctx context.Context, source ports.ItemSource, pageSize int) ([]domain.PreviewItem, int, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total, err := source.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	items, err := source.FetchPage(ctx, 0, min(pageSize, total))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	return items, total, nil
}
