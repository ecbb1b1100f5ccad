package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peekhq/peek/internal/config"
	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
	"github.com/peekhq/peek/internal/services"
	"github.com/peekhq/peek/internal/theme"
)

type uiState int

const (
	stateGallery uiState = iota
	stateHelp
	statePreview
)

// ModelOptions configures the browser TUI
type ModelOptions struct {
	DevMode         bool
	ErrorClearDelay time.Duration
	GridColumns     int
	Keys            config.KeyBindingsConfig
	Opener          ports.ContentOpener // Opens content externally (optional)
	PageSize        int
	Title           string
}

// Model is the root bubbletea model: a gallery of cards with the preview
// overlay on top
type Model struct {
	ctx            context.Context
	devMode        bool
	errorManager   *ErrorManager                // Error display and auto-clearing
	gallery        *Gallery                     // Card grid
	galleryLoading bool                         // A gallery page fetch is outstanding
	gate           InputGate                    // Caller-owned locks for preview keys
	height         int
	helpReturn     uiState                      // State to restore when help closes
	helpScreen     *HelpScreen
	keys           KeyMap
	opener         ports.ContentOpener
	pageSize       int
	preferences    ports.PreferenceStore        // Persists the auto-show preference (optional)
	preview        *services.PreviewService     // Preview session controller
	source         ports.ItemSource             // Where gallery pages come from
	spinner        spinner.Model
	state          uiState
	title          string
	width          int
}

// NewModel creates the browser model. preferences may be nil, in which case
// the auto-show toggle only lasts for the process.
func NewModel(
	ctx context.Context,
	opts ModelOptions,
	source ports.ItemSource,
	preview *services.PreviewService,
	preferences ports.PreferenceStore,
) *Model {
	keys := NewKeyMap(opts.Keys)
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = services.DefaultPageSize
	}

	m := &Model{
		ctx:          ctx,
		devMode:      opts.DevMode,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		keys:         keys,
		opener:       opts.Opener,
		pageSize:     pageSize,
		preferences:  preferences,
		preview:      preview,
		source:       source,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.SpinnerStyle),
		),
		state: stateGallery,
		title: opts.Title,
	}
	m.gallery = NewGallery(opts.GridColumns, &m.keys)
	return m
}

func (m *Model) Init() tea.Cmd {
	m.galleryLoading = true
	return tea.Batch(m.spinner.Tick, m.loadFirstPage())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gallery.SetSize(msg.Width, msg.Height)
		if m.helpScreen != nil {
			m.helpScreen.Update(msg)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil

	case firstPageMsg:
		m.galleryLoading = false
		if msg.err != nil {
			logging.Logger.Error("Failed to load first page", "error", msg.err)
			return m, m.errorManager.SetError(msg.err)
		}
		m.gallery.SetItems(msg.items, msg.total)
		return m, nil

	case galleryPageMsg:
		m.galleryLoading = false
		if msg.err != nil {
			return m, m.errorManager.SetError(msg.err)
		}
		m.gallery.AppendPage(msg.offset, msg.requested, msg.items)
		return m, nil

	case previewNavigatedMsg:
		if msg.err != nil {
			return m, m.errorManager.SetError(describeError(msg.err, m.keys.Preview.Retry.Help().Key))
		}
		return m, nil

	case contentOpenedMsg:
		if msg.err != nil {
			return m, m.errorManager.SetError(fmt.Errorf("failed to open content: %w", msg.err))
		}
		return m, nil

	case preferenceSavedMsg:
		m.gate.CloseLocked = false
		if msg.err != nil {
			logging.Logger.Warn("Failed to save auto-show preference", "error", msg.err)
			return m, m.errorManager.SetError(fmt.Errorf("failed to save preference: %w", msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit) {
			return m, m.quit()
		}
		switch m.state {
		case stateGallery:
			return m.updateGallery(msg)
		case statePreview:
			return m.updatePreview(msg)
		case stateHelp:
			return m.updateHelp(msg)
		}
	}
	return m, nil
}

func (m *Model) updateGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Application.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Application.Help):
		m.showHelp(stateGallery)
		return m, nil
	case key.Matches(msg, m.keys.Gallery.Open):
		m.openPreview()
		return m, nil
	}

	if m.gallery.HandleKey(msg) && m.gallery.NeedsMore() && !m.galleryLoading {
		return m, m.loadGalleryPage()
	}
	return m, nil
}

func (m *Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	isLoading := m.preview.IsLoading()

	switch {
	case key.Matches(msg, m.keys.Application.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Application.Help):
		m.gate.NavigationLocked = true
		m.showHelp(statePreview)
	case key.Matches(msg, m.keys.Preview.Close):
		if m.gate.CanClose(isLoading) {
			m.closePreview()
		}
	case key.Matches(msg, m.keys.Preview.Previous):
		if m.gate.CanNavigate(isLoading) {
			m.preview.NavigatePrevious()
		}
	case key.Matches(msg, m.keys.Preview.Next):
		if m.gate.CanNavigate(isLoading) {
			return m, m.navigateNext()
		}
	case key.Matches(msg, m.keys.Preview.Retry):
		if !isLoading {
			return m, m.loadMore()
		}
	case key.Matches(msg, m.keys.Preview.ToggleAlert):
		m.preview.ToggleAlertVisibility()
	case key.Matches(msg, m.keys.Preview.ToggleAutoAlert):
		return m, m.toggleAutoShow()
	case key.Matches(msg, m.keys.Preview.OpenExternal):
		return m, m.openExternal()
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, cmd := m.helpScreen.Update(msg)
	if m.helpScreen.Completed {
		m.state = m.helpReturn
		m.helpScreen = nil
		m.gate.NavigationLocked = false
	}
	return m, cmd
}

func (m *Model) showHelp(returnTo uiState) {
	m.helpScreen = NewHelpScreen(&m.keys)
	m.helpScreen.Init()
	m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.helpReturn = returnTo
	m.state = stateHelp
}

func (m *Model) openPreview() {
	m.preview.OpenWithTotal(m.gallery.Items(), m.gallery.Selected(), m.gallery.Total())
	if m.preview.State().IsOpen {
		m.state = statePreview
	}
}

// closePreview hands pages loaded during the session back to the gallery
// and selects the card that was last previewed
func (m *Model) closePreview() {
	state := m.preview.State()
	m.preview.Close()
	m.state = stateGallery

	if state.LoadedCount > m.gallery.Len() {
		m.gallery.SetItems(m.preview.Items(), state.TotalKnown)
	}
	m.gallery.Select(state.Cursor)
}

func (m *Model) toggleAutoShow() tea.Cmd {
	enabled := !m.preview.State().AutoShowAlert
	m.preview.SetAutoShowAlert(enabled)
	logging.Logger.Info("Auto-show alert toggled", "enabled", enabled)

	if m.preferences == nil {
		return nil
	}
	m.gate.CloseLocked = true
	preferences := m.preferences
	return func() tea.Msg {
		return preferenceSavedMsg{err: preferences.SetAutoShowAlert(enabled)}
	}
}

func (m *Model) openExternal() tea.Cmd {
	item := m.preview.State().CurrentItem
	if m.opener == nil || item == nil {
		return nil
	}
	opener, ref := m.opener, item.ContentRef
	return func() tea.Msg {
		return contentOpenedMsg{err: opener.Open(ref)}
	}
}

func (m *Model) navigateNext() tea.Cmd {
	ctx, preview := m.ctx, m.preview
	return func() tea.Msg {
		return previewNavigatedMsg{err: preview.NavigateNext(ctx)}
	}
}

func (m *Model) loadMore() tea.Cmd {
	ctx, preview := m.ctx, m.preview
	return func() tea.Msg {
		return previewNavigatedMsg{err: preview.LoadMore(ctx)}
	}
}

func (m *Model) loadFirstPage() tea.Cmd {
	ctx, source, pageSize := m.ctx, m.source, m.pageSize
	return func() tea.Msg {
		items, total, err := services.FirstPage(ctx, source, pageSize)
		return firstPageMsg{err: err, items: items, total: total}
	}
}

func (m *Model) loadGalleryPage() tea.Cmd {
	m.galleryLoading = true
	ctx, source := m.ctx, m.source
	offset := m.gallery.Len()
	count := m.pageSize
	if remaining := m.gallery.Remaining(); remaining != domain.UnknownTotal {
		count = min(count, remaining)
	}

	return func() tea.Msg {
		items, err := source.FetchPage(ctx, offset, count)
		if err != nil {
			err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}
		return galleryPageMsg{err: err, items: items, offset: offset, requested: count}
	}
}

func (m *Model) quit() tea.Cmd {
	m.preview.Reset()
	return tea.Quit
}

func (m *Model) View() string {
	if m.state == stateHelp && m.helpScreen != nil {
		return m.helpScreen.View()
	}

	background := m.galleryView()
	if m.state != statePreview {
		return background
	}

	overlay := previewView{
		keys:        &m.keys,
		spinnerView: m.spinner.View(),
		width:       m.width,
	}.render(m.preview.State())
	return compositeOverlay(background, overlay, m.width, m.height)
}

func (m *Model) galleryView() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.devMode, m.title))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.gallery.View())
	b.WriteString("\n")

	if err := m.errorManager.GetError(); err != nil {
		b.WriteString("\n" + theme.ErrorStyle.Render(formatErrorForDisplay(err, m.width)) + "\n")
	}

	b.WriteString(theme.HelpStyle.Render(renderHelpLine(m.keys.GalleryHelp())))
	return b.String()
}

// statusLine renders "loaded N of M" with a spinner while a page loads
func (m *Model) statusLine() string {
	total := "?"
	if t := m.gallery.Total(); t != domain.UnknownTotal {
		total = fmt.Sprintf("%d", t)
	}
	line := theme.StatusLineStyle.Render(fmt.Sprintf("loaded %d of %s", m.gallery.Len(), total))
	if m.galleryLoading {
		line += " " + m.spinner.View()
	}
	return line
}

func renderHelpLine(bindings []key.Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		help := b.Help()
		parts[i] = theme.HelpShortcutStyle.Render(help.Key) + " " + theme.HelpLabelStyle.Render(help.Desc)
	}
	return strings.Join(parts, "  •  ")
}
