package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
)

// PreviewService is the preview session controller. It owns the collection,
// the cursor and the alert state, and is the only thing that mutates them.
//
// All methods are safe for concurrent use. The mutex is never held while a
// page is being fetched.
type PreviewService struct {
	fetcher ports.PageFetcher
	opts    PreviewOptions

	mu            sync.Mutex
	autoShowAlert bool
	collection    *domain.Collection
	cursor        int
	generation    uint64
	isOpen        bool
	loader        *PaginationLoader
	sessionCancel context.CancelFunc
	sessionCtx    context.Context
	sessionID     string
	showAlert     bool
}

// NewPreviewService creates a new PreviewService.
// fetcher may be nil when every item is supplied at open time.
func NewPreviewService(fetcher ports.PageFetcher, opts PreviewOptions) *PreviewService {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Lookahead <= 0 {
		opts.Lookahead = DefaultLookahead
	}
	if opts.AlertRetention == "" {
		opts.AlertRetention = domain.AlertRetentionPreserve
	}
	return &PreviewService{
		autoShowAlert: opts.AutoShowAlert,
		cursor:        domain.ClosedCursor,
		fetcher:       fetcher,
		opts:          opts,
	}
}

// Open starts a session over items at startIndex. The total is unknown when
// a fetcher is configured, otherwise it is len(items).
func (s *PreviewService) Open(items []domain.PreviewItem, startIndex int) {
	total := len(items)
	if s.fetcher != nil {
		total = domain.UnknownTotal
	}
	s.OpenWithTotal(items, startIndex, total)
}

// OpenWithTotal starts a session with an explicit total (or UnknownTotal).
// Without a fetcher the total is always len(items). An open session is
// closed first. Opening with no items leaves the session closed.
func (s *PreviewService) OpenWithTotal(items []domain.PreviewItem, startIndex, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeLocked()
	if len(items) == 0 {
		logging.Logger.Debug("Ignoring open with no items")
		return
	}

	if s.fetcher == nil {
		total = len(items)
	}
	s.collection = domain.NewCollection(items, total)
	s.loader = NewPaginationLoader(s.fetcher, s.opts.PageSize, s.opts.Lookahead)
	s.sessionCtx, s.sessionCancel = context.WithCancel(context.Background())
	s.sessionID = uuid.NewString()
	s.isOpen = true
	s.moveCursorLocked(domain.ClampCursor(startIndex, s.collection.Len()))

	logging.Logger.Info("Preview session opened",
		"session_id", s.sessionID,
		"cursor", s.cursor,
		"loaded", s.collection.Len(),
		"total", s.collection.Total())
}

// Close ends the session. The collection is kept for observers; an
// outstanding fetch is cancelled and its result discarded.
func (s *PreviewService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isOpen {
		logging.Logger.Info("Preview session closed", "session_id", s.sessionID)
	}
	s.closeLocked()
}

// Reset closes the session and discards the collection
func (s *PreviewService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeLocked()
	s.collection = nil
	s.loader = nil
	logging.Logger.Debug("Preview session reset")
}

func (s *PreviewService) closeLocked() {
	s.generation++
	if s.sessionCancel != nil {
		s.sessionCancel()
		s.sessionCancel = nil
	}
	s.isOpen = false
	s.cursor = domain.ClosedCursor
	s.showAlert = domain.EvaluateAlert(nil, false, s.autoShowAlert, s.showAlert, s.opts.AlertRetention)
}

// NavigatePrevious moves back one item. No-op at the first item.
func (s *PreviewService) NavigatePrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isOpen || !domain.HasPrevious(s.cursor) {
		return
	}
	s.moveCursorLocked(s.cursor - 1)
}

// NavigateNext moves forward one item. Inside the lookahead window it first
// waits for the next page, then advances if an item became available.
// It does nothing while a page is loading. On fetch failure the cursor stays
// put and the error (wrapping domain.ErrFetchFailed) is returned.
func (s *PreviewService) NavigateNext(ctx context.Context) error {
	s.mu.Lock()
	if !s.isOpen || s.loader.IsLoading() {
		s.mu.Unlock()
		return nil
	}
	if !s.loader.ShouldFetch(s.cursor, s.collection) {
		if s.cursor < s.collection.Len()-1 {
			s.moveCursorLocked(s.cursor + 1)
		}
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	return s.fetchNextPage(ctx, true)
}

// LoadMore fetches the next page without moving the cursor. Use it to retry
// after a failed fetch.
func (s *PreviewService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.isOpen || !s.loader.HasFetcher() || !s.collection.CanGrow() {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	return s.fetchNextPage(ctx, false)
}

func (s *PreviewService) fetchNextPage(ctx context.Context, advance bool) error {
	s.mu.Lock()
	if !s.isOpen {
		s.mu.Unlock()
		return nil
	}
	generation := s.generation
	collection := s.collection
	loader := s.loader
	sessionCtx := s.sessionCtx
	sessionID := s.sessionID
	offset := collection.Len()
	count := loader.NextPageSize(collection)
	s.mu.Unlock()

	if count <= 0 {
		return nil
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sessionCtx, cancel)
	defer stop()

	logging.Logger.Debug("Fetching page",
		"session_id", sessionID,
		"offset", offset,
		"count", count)

	err := loader.RequestMore(fetchCtx, offset, count, func(items []domain.PreviewItem) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if generation != s.generation {
			logging.Logger.Debug("Discarding stale page",
				"session_id", sessionID,
				"offset", offset,
				"items", len(items))
			return
		}

		added := collection.Append(items)
		if len(items) < count {
			collection.MarkExhausted()
		}
		logging.Logger.Debug("Page appended",
			"session_id", sessionID,
			"offset", offset,
			"added", added,
			"loaded", collection.Len(),
			"total", collection.Total())

		if advance && s.cursor < collection.Len()-1 {
			s.moveCursorLocked(s.cursor + 1)
		}
	})
	if err == nil || errors.Is(err, domain.ErrAlreadyLoading) {
		return nil
	}

	s.mu.Lock()
	stale := generation != s.generation
	s.mu.Unlock()
	if stale {
		logging.Logger.Debug("Discarding error from stale fetch", "session_id", sessionID, "error", err)
		return nil
	}

	logging.Logger.Error("Failed to fetch page",
		"session_id", sessionID,
		"offset", offset,
		"error", err)
	return err
}

// ToggleAlertVisibility flips the alert banner. No-op when closed.
func (s *PreviewService) ToggleAlertVisibility() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isOpen {
		return
	}
	s.showAlert = !s.showAlert
}

// SetAutoShowAlert updates the auto-show preference. It takes effect on the
// next cursor change.
func (s *PreviewService) SetAutoShowAlert(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoShowAlert = enabled
}

// IsLoading reports whether a page fetch is outstanding for the open session
func (s *PreviewService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isOpen && s.loader.IsLoading()
}

// Items returns a copy of the loaded items, including pages appended while
// the session was open
func (s *PreviewService) Items() []domain.PreviewItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collection == nil {
		return nil
	}
	return s.collection.Items()
}

// State returns a snapshot of the session
func (s *PreviewService) State() PreviewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := PreviewState{
		AutoShowAlert: s.autoShowAlert,
		Cursor:        s.cursor,
		IsOpen:        s.isOpen,
		ShowAlert:     s.showAlert,
		TotalKnown:    domain.UnknownTotal,
	}
	if s.collection != nil {
		state.LoadedCount = s.collection.Len()
		state.TotalKnown = s.collection.Total()
	}
	if !s.isOpen {
		return state
	}

	if item, ok := s.collection.At(s.cursor); ok {
		state.CurrentItem = &item
	}
	state.HasNext = domain.HasNext(s.cursor, s.collection)
	state.HasPrevious = domain.HasPrevious(s.cursor)
	state.IsLoading = s.loader.IsLoading()
	return state
}

func (s *PreviewService) moveCursorLocked(cursor int) {
	s.cursor = cursor
	var current *domain.PreviewItem
	if item, ok := s.collection.At(cursor); ok {
		current = &item
	}
	s.showAlert = domain.EvaluateAlert(current, s.isOpen, s.autoShowAlert, s.showAlert, s.opts.AlertRetention)
}
