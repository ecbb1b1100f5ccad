package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content strings.Builder

	content.WriteString(theme.HelpGroupStyle.Render("Gallery") + "\n")
	content.WriteString(renderBinding(keys.Gallery.Up))
	content.WriteString(renderBinding(keys.Gallery.Down))
	content.WriteString(renderBinding(keys.Gallery.Left))
	content.WriteString(renderBinding(keys.Gallery.Right))
	content.WriteString(renderBinding(keys.Gallery.PrevPage))
	content.WriteString(renderBinding(keys.Gallery.NextPage))
	content.WriteString(renderBinding(keys.Gallery.Open))

	content.WriteString("\n" + theme.HelpGroupStyle.Render("Preview") + "\n")
	content.WriteString(renderBinding(keys.Preview.Previous))
	content.WriteString(renderBinding(keys.Preview.Next))
	content.WriteString(renderBinding(keys.Preview.ToggleAlert))
	content.WriteString(renderBinding(keys.Preview.ToggleAutoAlert))
	content.WriteString(renderBinding(keys.Preview.Retry))
	content.WriteString(renderBinding(keys.Preview.OpenExternal))
	content.WriteString(renderBinding(keys.Preview.Close))

	content.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	content.WriteString(renderBinding(keys.Application.Help))
	content.WriteString(renderBinding(keys.Application.Quit))
	content.WriteString(renderBinding(keys.Application.ForceQuit))

	content.WriteString("\n" + theme.HelpGroupStyle.Render("Indicators (read-only)") + "\n")
	content.WriteString(renderShortcut(domain.SymbolImage, "image"))
	content.WriteString(renderShortcut(domain.SymbolPDF, "PDF"))
	content.WriteString(renderShortcut(domain.SymbolDocument, "document"))
	content.WriteString(renderShortcut("⚠", "item has issues"))
	content.WriteString(renderShortcut("12 / 40+", "more items may exist"))

	return content.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// header: 2 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(5, msg.Height-4)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Preview.Close, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return renderHeader(false, "Keyboard shortcuts") + "\n" + h.viewport.View() + "\n" + footer
}
