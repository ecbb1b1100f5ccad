package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peekhq/peek/internal/adapters/demo"
	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/ports"
	"github.com/peekhq/peek/internal/ports/mocks"
	"github.com/peekhq/peek/internal/services"
)

func newTestModel(t *testing.T, total int, preferences ports.PreferenceStore) *Model {
	t.Helper()

	generator := demo.NewGenerator()
	generator.Now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }
	source := demo.NewSource(generator, total, 0)

	preview := services.NewPreviewService(source, services.PreviewOptions{
		AlertRetention: domain.AlertRetentionPreserve,
		AutoShowAlert:  true,
		Lookahead:      2,
		PageSize:       10,
	})

	m := NewModel(context.Background(), ModelOptions{
		ErrorClearDelay: time.Second,
		GridColumns:     4,
		PageSize:        10,
		Title:           "demo",
	}, source, preview, preferences)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(m.loadFirstPage()())
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and runs the returned command once, feeding its
// message back into the model
func press(m *Model, s string) {
	_, cmd := m.Update(keyMsg(s))
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		m.Update(msg)
	}
}

func TestModel_FirstPageFillsGallery(t *testing.T) {
	m := newTestModel(t, 30, nil)

	assert.Equal(t, 10, m.gallery.Len())
	assert.Equal(t, 30, m.gallery.Total())
	assert.False(t, m.galleryLoading)
	assert.Contains(t, m.View(), "loaded 10 of 30")
}

func TestModel_OpenNavigateClose(t *testing.T) {
	m := newTestModel(t, 30, nil)

	press(m, "right")
	press(m, "enter")
	require.Equal(t, statePreview, m.state)

	state := m.preview.State()
	assert.True(t, state.IsOpen)
	assert.Equal(t, 1, state.Cursor)
	assert.Equal(t, 30, state.TotalKnown)

	press(m, "right")
	assert.Equal(t, 2, m.preview.State().Cursor)

	press(m, "left")
	press(m, "left")
	press(m, "left")
	assert.Equal(t, 0, m.preview.State().Cursor)

	press(m, "esc")
	assert.Equal(t, stateGallery, m.state)
	assert.False(t, m.preview.State().IsOpen)
	assert.Equal(t, 0, m.gallery.Selected())
}

func TestModel_PreviewPagesFlowBackToGallery(t *testing.T) {
	m := newTestModel(t, 30, nil)

	press(m, "enter")
	for range 9 {
		press(m, "right")
	}

	state := m.preview.State()
	assert.Equal(t, 9, state.Cursor)
	assert.Equal(t, 20, state.LoadedCount)

	press(m, "esc")
	assert.Equal(t, 20, m.gallery.Len())
	assert.Equal(t, 9, m.gallery.Selected())
}

func TestModel_GalleryScrollFetchesNextPage(t *testing.T) {
	m := newTestModel(t, 12, nil)

	press(m, "down")
	press(m, "down")

	assert.Equal(t, 12, m.gallery.Len())
	assert.False(t, m.gallery.CanGrow())
}

func TestModel_ToggleAlert(t *testing.T) {
	m := newTestModel(t, 30, nil)

	// Item 5 (index 4) carries an issue in the demo data
	m.gallery.Select(4)
	press(m, "enter")
	require.True(t, m.preview.State().ShowAlert)

	press(m, "a")
	assert.False(t, m.preview.State().ShowAlert)
}

func TestModel_ToggleAutoAlertPersists(t *testing.T) {
	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().SetAutoShowAlert(false).Return(nil).Once()

	m := newTestModel(t, 30, store)
	press(m, "enter")

	_, cmd := m.Update(keyMsg("A"))
	require.NotNil(t, cmd)
	assert.True(t, m.gate.CloseLocked)
	assert.False(t, m.preview.State().AutoShowAlert)

	// Close is held until the preference is saved
	m.Update(keyMsg("esc"))
	assert.Equal(t, statePreview, m.state)

	m.Update(cmd())
	assert.False(t, m.gate.CloseLocked)

	press(m, "esc")
	assert.Equal(t, stateGallery, m.state)
}

func TestModel_PreferenceSaveFailureShowsError(t *testing.T) {
	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().SetAutoShowAlert(false).Return(errors.New("disk full")).Once()

	m := newTestModel(t, 30, store)
	press(m, "enter")
	press(m, "A")

	require.True(t, m.errorManager.HasError())
	assert.Contains(t, m.errorManager.GetError().Error(), "disk full")
	assert.False(t, m.gate.CloseLocked)
}

func TestModel_HelpLocksNavigation(t *testing.T) {
	m := newTestModel(t, 30, nil)

	press(m, "enter")
	press(m, "?")
	require.Equal(t, stateHelp, m.state)
	assert.True(t, m.gate.NavigationLocked)

	press(m, "?")
	assert.Equal(t, statePreview, m.state)
	assert.False(t, m.gate.NavigationLocked)
}

func TestModel_OpenEmptyGalleryStaysClosed(t *testing.T) {
	m := newTestModel(t, 0, nil)

	press(m, "enter")
	assert.Equal(t, stateGallery, m.state)
	assert.False(t, m.preview.State().IsOpen)
	assert.Contains(t, m.View(), "No items to show.")
}

func TestModel_OpenExternal(t *testing.T) {
	opener := mocks.NewMockContentOpener(t)
	opener.EXPECT().Open("https://picsum.photos/seed/1/800/600").Return(errors.New("no viewer")).Once()

	m := newTestModel(t, 30, nil)
	m.opener = opener

	press(m, "enter")
	press(m, "o")

	require.True(t, m.errorManager.HasError())
	assert.Contains(t, m.errorManager.GetError().Error(), "no viewer")
}

func TestModel_OpenExternalWithoutOpener(t *testing.T) {
	m := newTestModel(t, 30, nil)
	press(m, "enter")

	_, cmd := m.Update(keyMsg("o"))
	assert.Nil(t, cmd)
}
