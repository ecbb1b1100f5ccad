package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peekhq/peek/internal/domain"
)

func newTestCatalog(t *testing.T) *SQLiteCatalog {
	t.Helper()
	catalog, err := NewSQLiteCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })
	return catalog
}

func sampleItems(start, count int) []domain.PreviewItem {
	items := make([]domain.PreviewItem, count)
	for i := range items {
		n := start + i + 1
		items[i] = domain.PreviewItem{
			ContentRef: fmt.Sprintf("https://picsum.photos/seed/%d/800/600", n),
			ID:         fmt.Sprintf("item-%03d", n),
			Kind:       domain.AllKinds[n%len(domain.AllKinds)],
			Metadata: domain.Metadata{
				{Key: "Status", Value: "Draft"},
				{Key: "Created By", Value: "User 1"},
				{Key: "Date", Value: "2024-01-01"},
			},
			Title: fmt.Sprintf("Asset #%d", n),
		}
		if n%4 == 0 {
			items[i].Issues = []string{"Low resolution", "Missing license"}
		}
	}
	return items
}

func TestSQLiteCatalog_AddAndGet(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.Add(ctx, sampleItems(0, 4)))

	item, err := catalog.Get(ctx, "item-004")
	require.NoError(t, err)
	assert.Equal(t, "Asset #4", item.Title)
	assert.Equal(t, []string{"Low resolution", "Missing license"}, item.Issues)
	require.Len(t, item.Metadata, 3)
	assert.Equal(t, "Status", item.Metadata[0].Key, "metadata keeps insertion order")
	assert.Equal(t, "Date", item.Metadata[2].Key)

	plain, err := catalog.Get(ctx, "item-001")
	require.NoError(t, err)
	assert.False(t, plain.HasIssues())
}

func TestSQLiteCatalog_GetMissing(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSQLiteCatalog_FetchPage(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, catalog.Add(ctx, sampleItems(0, 25)))

	tests := []struct {
		name    string
		offset  int
		count   int
		wantLen int
		firstID string
	}{
		{"first page", 0, 10, 10, "item-001"},
		{"middle page", 10, 10, 10, "item-011"},
		{"short last page", 20, 10, 5, "item-021"},
		{"past the end", 30, 10, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := catalog.FetchPage(ctx, tt.offset, tt.count)
			require.NoError(t, err)
			assert.Len(t, items, tt.wantLen)
			if tt.firstID != "" {
				assert.Equal(t, tt.firstID, items[0].ID)
			}
		})
	}

	_, err := catalog.FetchPage(ctx, -1, 10)
	assert.Error(t, err)
}

func TestSQLiteCatalog_AddAppendsInOrder(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.Add(ctx, sampleItems(0, 3)))
	require.NoError(t, catalog.Add(ctx, sampleItems(3, 2)))

	items, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("item-%03d", i+1), item.ID)
	}

	n, err := catalog.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestSQLiteCatalog_AddRejectsInvalidItem(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	items := sampleItems(0, 2)
	items[1].Kind = "video"

	err := catalog.Add(ctx, items)
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	n, err := catalog.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "failed batch is rolled back")
}

func TestSQLiteCatalog_Clear(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, catalog.Add(ctx, sampleItems(0, 8)))

	require.NoError(t, catalog.Clear(ctx))

	n, err := catalog.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// positions restart after a clear
	require.NoError(t, catalog.Add(ctx, sampleItems(0, 1)))
	items, err := catalog.FetchPage(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-001", items[0].ID)
}

func TestSQLiteCatalog_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewSQLiteCatalogForPath(dir)
	require.NoError(t, err)
	require.NoError(t, first.Add(ctx, sampleItems(0, 3)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteCatalogForPath(dir)
	require.NoError(t, err)
	defer second.Close()

	n, err := second.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
