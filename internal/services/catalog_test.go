package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/peekhq/peek/internal/domain"
	portsmocks "github.com/peekhq/peek/internal/ports/mocks"
)

func TestCatalogService_SeedAppendsAfterExisting(t *testing.T) {
	reader := portsmocks.NewMockCatalogReader(t)
	writer := portsmocks.NewMockCatalogWriter(t)
	generator := portsmocks.NewMockItemGenerator(t)

	reader.EXPECT().Count(mock.Anything).Return(20, nil)
	generator.EXPECT().Generate(20, 5).Return(testItems(20, 5))
	writer.EXPECT().Add(mock.Anything, mock.MatchedBy(func(items []domain.PreviewItem) bool {
		return len(items) == 5 && items[0].ID == "21"
	})).Return(nil)

	service := NewCatalogService(reader, writer, generator)
	added, err := service.Seed(context.Background(), CatalogSeedParams{Count: 5})

	require.NoError(t, err)
	assert.Equal(t, 5, added)
}

func TestCatalogService_SeedReplaceClearsFirst(t *testing.T) {
	reader := portsmocks.NewMockCatalogReader(t)
	writer := portsmocks.NewMockCatalogWriter(t)
	generator := portsmocks.NewMockItemGenerator(t)

	writer.EXPECT().Clear(mock.Anything).Return(nil)
	generator.EXPECT().Generate(0, 3).Return(testItems(0, 3))
	writer.EXPECT().Add(mock.Anything, mock.Anything).Return(nil)

	service := NewCatalogService(reader, writer, generator)
	added, err := service.Seed(context.Background(), CatalogSeedParams{Count: 3, Replace: true})

	require.NoError(t, err)
	assert.Equal(t, 3, added)
}

func TestCatalogService_SeedRejectsInvalidInput(t *testing.T) {
	reader := portsmocks.NewMockCatalogReader(t)
	writer := portsmocks.NewMockCatalogWriter(t)
	generator := portsmocks.NewMockItemGenerator(t)
	service := NewCatalogService(reader, writer, generator)

	_, err := service.Seed(context.Background(), CatalogSeedParams{Count: 0})
	assert.Error(t, err)

	bad := testItems(0, 1)
	bad[0].Kind = "spreadsheet"
	reader.EXPECT().Count(mock.Anything).Return(0, nil)
	generator.EXPECT().Generate(0, 1).Return(bad)

	_, err = service.Seed(context.Background(), CatalogSeedParams{Count: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestCatalogService_GetWrapsNotFound(t *testing.T) {
	reader := portsmocks.NewMockCatalogReader(t)
	reader.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrItemNotFound)

	service := NewCatalogService(reader, portsmocks.NewMockCatalogWriter(t), portsmocks.NewMockItemGenerator(t))
	_, err := service.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCatalogService_Find(t *testing.T) {
	items := []domain.PreviewItem{
		{ID: "1", Title: "Quarterly Report", Kind: domain.KindPDF},
		{ID: "2", Title: "Beach Sunset", Kind: domain.KindImage},
		{ID: "3", Title: "Release Notes", Kind: domain.KindDocument},
	}

	reader := portsmocks.NewMockCatalogReader(t)
	reader.EXPECT().List(mock.Anything).Return(items, nil)

	service := NewCatalogService(reader, portsmocks.NewMockCatalogWriter(t), portsmocks.NewMockItemGenerator(t))

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"exact word", "sunset", []string{"2"}},
		{"case insensitive", "REPORT", []string{"1"}},
		{"no match", "zzz", []string{}},
		{"blank query", "  ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.Find(context.Background(), tt.query, 0)
			require.NoError(t, err)

			ids := []string{}
			for _, r := range results {
				ids = append(ids, r.Item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogService_FindLimit(t *testing.T) {
	reader := portsmocks.NewMockCatalogReader(t)
	reader.EXPECT().List(mock.Anything).Return(testItems(0, 30), nil)

	service := NewCatalogService(reader, portsmocks.NewMockCatalogWriter(t), portsmocks.NewMockItemGenerator(t))
	results, err := service.Find(context.Background(), "asset", 7)

	require.NoError(t, err)
	assert.Len(t, results, 7)
}

func TestCatalogService_Suggest(t *testing.T) {
	items := []domain.PreviewItem{
		{ID: "1", Title: "Invoice"},
		{ID: "2", Title: "Invoices"},
		{ID: "3", Title: "Landscape"},
	}
	reader := portsmocks.NewMockCatalogReader(t)
	reader.EXPECT().List(mock.Anything).Return(items, nil)

	service := NewCatalogService(reader, portsmocks.NewMockCatalogWriter(t), portsmocks.NewMockItemGenerator(t))
	titles, err := service.Suggest(context.Background(), "invoise", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"Invoice", "Invoices"}, titles)
}

func TestCatalogService_ListError(t *testing.T) {
	reader := portsmocks.NewMockCatalogReader(t)
	reader.EXPECT().List(mock.Anything).Return(nil, errors.New("disk full"))

	service := NewCatalogService(reader, portsmocks.NewMockCatalogWriter(t), portsmocks.NewMockItemGenerator(t))
	_, err := service.Find(context.Background(), "x", 0)

	assert.ErrorContains(t, err, "disk full")
}

func TestFirstPage(t *testing.T) {
	t.Run("clamps to total", func(t *testing.T) {
		source := portsmocks.NewMockCatalogReader(t)
		source.EXPECT().Count(mock.Anything).Return(4, nil)
		source.EXPECT().FetchPage(mock.Anything, 0, 4).Return(testItems(0, 4), nil)

		items, total, err := FirstPage(context.Background(), source, 10)

		require.NoError(t, err)
		assert.Len(t, items, 4)
		assert.Equal(t, 4, total)
	})

	t.Run("empty source", func(t *testing.T) {
		source := portsmocks.NewMockCatalogReader(t)
		source.EXPECT().Count(mock.Anything).Return(0, nil)

		items, total, err := FirstPage(context.Background(), source, 10)

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Zero(t, total)
	})

	t.Run("fetch failure", func(t *testing.T) {
		source := portsmocks.NewMockCatalogReader(t)
		source.EXPECT().Count(mock.Anything).Return(40, nil)
		source.EXPECT().FetchPage(mock.Anything, 0, 10).Return(nil, errors.New("boom"))

		_, _, err := FirstPage(context.Background(), source, 10)

		assert.ErrorIs(t, err, domain.ErrFetchFailed)
	})
}
