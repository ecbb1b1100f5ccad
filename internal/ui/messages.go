package ui

import "github.com/peekhq/peek/internal/domain"

// firstPageMsg carries the opening batch of the gallery
type firstPageMsg struct {
	err   error
	items []domain.PreviewItem
	total int
}

// galleryPageMsg carries a page fetched while scrolling the gallery
type galleryPageMsg struct {
	err       error
	items     []domain.PreviewItem
	offset    int
	requested int
}

// previewNavigatedMsg is sent when a NavigateNext or LoadMore call returns
type previewNavigatedMsg struct {
	err error
}

// contentOpenedMsg is sent after the external viewer was started
type contentOpenedMsg struct {
	err error
}

// preferenceSavedMsg is sent after the auto-show preference is persisted
type preferenceSavedMsg struct {
	err error
}
