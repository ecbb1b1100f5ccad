package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/peekhq/peek/internal/domain"
	portsmocks "github.com/peekhq/peek/internal/ports/mocks"
)

func testItems(start, count int) []domain.PreviewItem {
	items := make([]domain.PreviewItem, count)
	for i := range items {
		idx := start + i + 1
		items[i] = domain.PreviewItem{
			ID:    fmt.Sprintf("%d", idx),
			Title: fmt.Sprintf("Asset #%d", idx),
			Kind:  domain.AllKinds[idx%len(domain.AllKinds)],
		}
	}
	return items
}

func withIssues(items []domain.PreviewItem, indexes ...int) []domain.PreviewItem {
	for _, i := range indexes {
		items[i].Issues = []string{"Missing alt text"}
	}
	return items
}

func defaultOptions() PreviewOptions {
	return PreviewOptions{AutoShowAlert: true, Lookahead: 2, PageSize: 10}
}

func TestPreviewService_InitiallyClosed(t *testing.T) {
	svc := NewPreviewService(nil, defaultOptions())

	state := svc.State()
	assert.False(t, state.IsOpen)
	assert.Equal(t, domain.ClosedCursor, state.Cursor)
	assert.Nil(t, state.CurrentItem)
	assert.False(t, state.ShowAlert)
	assert.False(t, state.IsLoading)
	assert.False(t, state.HasNext)
	assert.False(t, state.HasPrevious)
}

func TestPreviewService_OpenClampsStartIndex(t *testing.T) {
	tests := []struct {
		name       string
		startIndex int
		wantCursor int
	}{
		{"negative start", -5, 0},
		{"in range", 3, 3},
		{"past the end", 42, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPreviewService(nil, defaultOptions())
			svc.Open(testItems(0, 10), tt.startIndex)

			state := svc.State()
			assert.True(t, state.IsOpen)
			assert.Equal(t, tt.wantCursor, state.Cursor)
			require.NotNil(t, state.CurrentItem)
			assert.Equal(t, fmt.Sprintf("%d", tt.wantCursor+1), state.CurrentItem.ID)
		})
	}
}

func TestPreviewService_OpenWithNoItemsStaysClosed(t *testing.T) {
	svc := NewPreviewService(nil, defaultOptions())

	svc.Open(nil, 0)

	state := svc.State()
	assert.False(t, state.IsOpen)
	assert.Equal(t, domain.ClosedCursor, state.Cursor)
}

func TestPreviewService_OpenTotal(t *testing.T) {
	t.Run("without fetcher total is the item count", func(t *testing.T) {
		svc := NewPreviewService(nil, defaultOptions())
		svc.OpenWithTotal(testItems(0, 5), 0, 50)

		assert.Equal(t, 5, svc.State().TotalKnown)
	})

	t.Run("with fetcher total is unknown", func(t *testing.T) {
		svc := NewPreviewService(portsmocks.NewMockPageFetcher(t), defaultOptions())
		svc.Open(testItems(0, 5), 0)

		state := svc.State()
		assert.Equal(t, domain.UnknownTotal, state.TotalKnown)
		assert.True(t, state.HasNext)
	})

	t.Run("explicit total", func(t *testing.T) {
		svc := NewPreviewService(portsmocks.NewMockPageFetcher(t), defaultOptions())
		svc.OpenWithTotal(testItems(0, 5), 0, 50)

		assert.Equal(t, 50, svc.State().TotalKnown)
	})
}

func TestPreviewService_NavigationIdempotentAtEnds(t *testing.T) {
	svc := NewPreviewService(nil, defaultOptions())
	svc.Open(testItems(0, 3), 0)

	svc.NavigatePrevious()
	assert.Equal(t, 0, svc.State().Cursor)
	assert.False(t, svc.State().HasPrevious)

	require.NoError(t, svc.NavigateNext(context.Background()))
	require.NoError(t, svc.NavigateNext(context.Background()))
	assert.Equal(t, 2, svc.State().Cursor)

	require.NoError(t, svc.NavigateNext(context.Background()))
	state := svc.State()
	assert.Equal(t, 2, state.Cursor)
	assert.False(t, state.HasNext)
	assert.True(t, state.HasPrevious)

	svc.NavigatePrevious()
	assert.Equal(t, 1, svc.State().Cursor)
}

func TestPreviewService_OpenCloseRoundTrip(t *testing.T) {
	svc := NewPreviewService(nil, defaultOptions())
	before := svc.State()

	svc.Open(withIssues(testItems(0, 3), 1), 1)
	require.True(t, svc.State().ShowAlert)
	svc.Close()

	after := svc.State()
	assert.Equal(t, before.IsOpen, after.IsOpen)
	assert.Equal(t, before.Cursor, after.Cursor)
	assert.Equal(t, before.ShowAlert, after.ShowAlert)
	assert.Nil(t, after.CurrentItem)
	assert.Equal(t, 3, after.LoadedCount, "collection is kept on close")
}

func TestPreviewService_ResetDiscardsCollection(t *testing.T) {
	svc := NewPreviewService(nil, defaultOptions())
	svc.Open(testItems(0, 3), 1)

	svc.Reset()

	state := svc.State()
	assert.False(t, state.IsOpen)
	assert.Equal(t, 0, state.LoadedCount)
	assert.Equal(t, domain.UnknownTotal, state.TotalKnown)
	assert.Nil(t, svc.Items())

	require.NoError(t, svc.NavigateNext(context.Background()))
	require.NoError(t, svc.LoadMore(context.Background()))
	assert.False(t, svc.IsLoading())
}

func TestPreviewService_HasNext(t *testing.T) {
	tests := []struct {
		name   string
		loaded int
		total  int
		cursor int
		want   bool
	}{
		{"inside loaded items", 20, 20, 5, true},
		{"last item of exhausted collection", 20, 20, 19, false},
		{"last loaded item with more to fetch", 20, 30, 19, true},
		{"last loaded item with unknown total", 20, domain.UnknownTotal, 19, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPreviewService(portsmocks.NewMockPageFetcher(t), defaultOptions())
			svc.OpenWithTotal(testItems(0, tt.loaded), tt.cursor, tt.total)

			assert.Equal(t, tt.want, svc.State().HasNext)
		})
	}
}

func TestPreviewService_NavigateNextLoadsPageAtEnd(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).Return(testItems(20, 10), nil).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 20), 19, 30)

	require.NoError(t, svc.NavigateNext(context.Background()))

	state := svc.State()
	assert.Equal(t, 30, state.LoadedCount)
	assert.Equal(t, 20, state.Cursor)
	assert.Equal(t, "21", state.CurrentItem.ID)
	assert.False(t, state.IsLoading)
	assert.True(t, state.HasNext)
}

func TestPreviewService_NavigateNextLookaheadWindow(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).Return(testItems(20, 10), nil).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 20), 17, 100)

	// 17 is outside the window: plain move
	require.NoError(t, svc.NavigateNext(context.Background()))
	assert.Equal(t, 18, svc.State().Cursor)
	assert.Equal(t, 20, svc.State().LoadedCount)

	// 18 is inside the window: fetch, then move
	require.NoError(t, svc.NavigateNext(context.Background()))
	state := svc.State()
	assert.Equal(t, 19, state.Cursor)
	assert.Equal(t, 30, state.LoadedCount)
}

func TestPreviewService_PageSizeClampedToRemaining(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 25, 5).Return(testItems(25, 5), nil).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 25), 24, 30)

	require.NoError(t, svc.NavigateNext(context.Background()))

	state := svc.State()
	assert.Equal(t, 30, state.LoadedCount)
	assert.Equal(t, 25, state.Cursor)
}

func TestPreviewService_ShortPageExhaustsSource(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 5, 10).Return(testItems(5, 3), nil).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.Open(testItems(0, 5), 4)

	require.NoError(t, svc.NavigateNext(context.Background()))
	state := svc.State()
	assert.Equal(t, 8, state.LoadedCount)
	assert.Equal(t, 8, state.TotalKnown)
	assert.Equal(t, 5, state.Cursor)

	// walk to the end: no further fetches
	for range 5 {
		require.NoError(t, svc.NavigateNext(context.Background()))
	}
	state = svc.State()
	assert.Equal(t, 7, state.Cursor)
	assert.False(t, state.HasNext)
}

func TestPreviewService_EmptyPageLeavesCursor(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 5, 10).Return(nil, nil).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.Open(testItems(0, 5), 4)

	require.NoError(t, svc.NavigateNext(context.Background()))

	state := svc.State()
	assert.Equal(t, 4, state.Cursor)
	assert.Equal(t, 5, state.TotalKnown)
	assert.False(t, state.HasNext)
}

func TestPreviewService_FetchFailureThenRetry(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).Return(nil, errors.New("backend unavailable")).Once()
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).Return(testItems(20, 10), nil).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 20), 19, 30)

	err := svc.NavigateNext(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorContains(t, err, "backend unavailable")

	state := svc.State()
	assert.Equal(t, 19, state.Cursor)
	assert.Equal(t, 20, state.LoadedCount)
	assert.False(t, state.IsLoading)
	assert.True(t, state.IsOpen)

	require.NoError(t, svc.LoadMore(context.Background()))
	state = svc.State()
	assert.Equal(t, 19, state.Cursor, "retry does not move the cursor")
	assert.Equal(t, 30, state.LoadedCount)
}

func TestPreviewService_SingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).
		RunAndReturn(func(ctx context.Context, offset, count int) ([]domain.PreviewItem, error) {
			close(started)
			<-release
			return testItems(offset, count), nil
		}).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 20), 19, 30)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.NavigateNext(context.Background()) }()

	<-started
	assert.True(t, svc.IsLoading())
	assert.True(t, svc.State().IsLoading)

	// second request while the first is outstanding is dropped
	require.NoError(t, svc.NavigateNext(context.Background()))
	require.NoError(t, svc.LoadMore(context.Background()))
	assert.Equal(t, 19, svc.State().Cursor)

	close(release)
	require.NoError(t, <-errCh)

	state := svc.State()
	assert.Equal(t, 20, state.Cursor)
	assert.Equal(t, 30, state.LoadedCount)
	assert.False(t, state.IsLoading)
}

func TestPreviewService_ConcurrentNavigateNextFetchesOnce(t *testing.T) {
	release := make(chan struct{})

	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).
		RunAndReturn(func(ctx context.Context, offset, count int) ([]domain.PreviewItem, error) {
			<-release
			return testItems(offset, count), nil
		}).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 20), 19, 30)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.NavigateNext(context.Background()))
		}()
	}

	require.Eventually(t, svc.IsLoading, testTimeout, testTick)
	close(release)
	wg.Wait()

	state := svc.State()
	assert.Equal(t, 30, state.LoadedCount)
	assert.LessOrEqual(t, state.Cursor, 21)
	assert.GreaterOrEqual(t, state.Cursor, 20)
}

func TestPreviewService_CloseCancelsInFlightFetch(t *testing.T) {
	started := make(chan struct{})

	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).
		RunAndReturn(func(ctx context.Context, offset, count int) ([]domain.PreviewItem, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 20), 19, 30)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.NavigateNext(context.Background()) }()

	<-started
	svc.Close()

	require.NoError(t, <-errCh, "errors from a closed session are not surfaced")
	state := svc.State()
	assert.False(t, state.IsOpen)
	assert.False(t, state.IsLoading)
	assert.Equal(t, 20, state.LoadedCount)
}

func TestPreviewService_StaleBatchDiscardedAfterReopen(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).
		RunAndReturn(func(ctx context.Context, offset, count int) ([]domain.PreviewItem, error) {
			close(started)
			<-release
			return testItems(offset, count), nil
		}).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 20), 19, 30)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.NavigateNext(context.Background()) }()

	<-started
	svc.OpenWithTotal(testItems(100, 5), 2, 5)
	assert.False(t, svc.IsLoading(), "new session starts idle")

	close(release)
	require.NoError(t, <-errCh)

	state := svc.State()
	assert.True(t, state.IsOpen)
	assert.Equal(t, 5, state.LoadedCount)
	assert.Equal(t, 2, state.Cursor)
	assert.Equal(t, "103", state.CurrentItem.ID)
}

func TestPreviewService_CallerContextCancelled(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 20, 10).
		RunAndReturn(func(ctx context.Context, offset, count int) ([]domain.PreviewItem, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.OpenWithTotal(testItems(0, 20), 19, 30)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.NavigateNext(ctx)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 19, svc.State().Cursor)
}

func TestPreviewService_AlertVisibility(t *testing.T) {
	// items 1 and 2 carry issues, 0 and 3 do not
	items := func() []domain.PreviewItem { return withIssues(testItems(0, 4), 1, 2) }

	t.Run("auto show on open", func(t *testing.T) {
		svc := NewPreviewService(nil, defaultOptions())
		svc.Open(items(), 1)
		assert.True(t, svc.State().ShowAlert)
	})

	t.Run("hidden for items without issues", func(t *testing.T) {
		svc := NewPreviewService(nil, defaultOptions())
		svc.Open(items(), 2)
		svc.NavigatePrevious()
		svc.NavigatePrevious()
		assert.False(t, svc.State().ShowAlert)
	})

	t.Run("auto show disabled keeps banner hidden", func(t *testing.T) {
		opts := defaultOptions()
		opts.AutoShowAlert = false
		svc := NewPreviewService(nil, opts)
		svc.Open(items(), 1)
		assert.False(t, svc.State().ShowAlert)

		svc.ToggleAlertVisibility()
		assert.True(t, svc.State().ShowAlert)
		svc.ToggleAlertVisibility()
		assert.False(t, svc.State().ShowAlert)
	})

	t.Run("preserve keeps manual toggle across issue items", func(t *testing.T) {
		opts := defaultOptions()
		opts.AutoShowAlert = false
		svc := NewPreviewService(nil, opts)
		svc.Open(items(), 1)
		svc.ToggleAlertVisibility()

		require.NoError(t, svc.NavigateNext(context.Background()))
		assert.True(t, svc.State().ShowAlert)
	})

	t.Run("reset hides manual toggle on move", func(t *testing.T) {
		opts := defaultOptions()
		opts.AutoShowAlert = false
		opts.AlertRetention = domain.AlertRetentionReset
		svc := NewPreviewService(nil, opts)
		svc.Open(items(), 1)
		svc.ToggleAlertVisibility()

		require.NoError(t, svc.NavigateNext(context.Background()))
		assert.False(t, svc.State().ShowAlert)
	})

	t.Run("close hides banner", func(t *testing.T) {
		svc := NewPreviewService(nil, defaultOptions())
		svc.Open(items(), 1)
		svc.Close()
		assert.False(t, svc.State().ShowAlert)
	})

	t.Run("toggle is a no-op when closed", func(t *testing.T) {
		svc := NewPreviewService(nil, defaultOptions())
		svc.ToggleAlertVisibility()
		assert.False(t, svc.State().ShowAlert)
	})

	t.Run("preference applies on next cursor change", func(t *testing.T) {
		svc := NewPreviewService(nil, defaultOptions())
		svc.Open(items(), 0)

		svc.SetAutoShowAlert(false)
		state := svc.State()
		assert.False(t, state.AutoShowAlert)
		assert.False(t, state.ShowAlert)

		require.NoError(t, svc.NavigateNext(context.Background()))
		assert.False(t, svc.State().ShowAlert)

		svc.SetAutoShowAlert(true)
		assert.False(t, svc.State().ShowAlert, "not applied until the cursor moves")
		require.NoError(t, svc.NavigateNext(context.Background()))
		assert.True(t, svc.State().ShowAlert)
	})
}

func TestPreviewService_ItemsIncludesAppendedPages(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, 3, 10).Return(testItems(3, 2), nil).Once()

	svc := NewPreviewService(fetcher, defaultOptions())
	svc.Open(testItems(0, 3), 2)
	require.NoError(t, svc.NavigateNext(context.Background()))
	svc.Close()

	items := svc.Items()
	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("%d", i+1), item.ID, "insertion order is kept")
	}
}

func TestPreviewService_InvariantsHoldAcrossOperations(t *testing.T) {
	fetcher := portsmocks.NewMockPageFetcher(t)
	fetcher.EXPECT().FetchPage(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, offset, count int) ([]domain.PreviewItem, error) {
			return testItems(offset, count), nil
		}).Maybe()

	svc := NewPreviewService(fetcher, defaultOptions())
	ctx := context.Background()

	check := func() {
		s := svc.State()
		if !s.IsOpen {
			assert.Equal(t, domain.ClosedCursor, s.Cursor)
			return
		}
		assert.GreaterOrEqual(t, s.Cursor, 0)
		assert.Less(t, s.Cursor, s.LoadedCount)
		assert.Equal(t, s.Cursor > 0, s.HasPrevious)
		if s.TotalKnown != domain.UnknownTotal {
			assert.LessOrEqual(t, s.LoadedCount, s.TotalKnown)
		}
	}

	svc.OpenWithTotal(testItems(0, 10), 0, 35)
	check()
	for range 40 {
		require.NoError(t, svc.NavigateNext(ctx))
		check()
	}
	assert.Equal(t, 34, svc.State().Cursor)
	assert.Equal(t, 35, svc.State().LoadedCount)

	for range 5 {
		svc.NavigatePrevious()
		check()
	}
	svc.Close()
	check()
	svc.Reset()
	check()
}
