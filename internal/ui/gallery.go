package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/theme"
)

const (
	cardHeight   = 5 // 3 content lines + border
	minCardWidth = 18
	chromeLines  = 8 // header, status, paginator, error, footer
)

// Gallery is a grid of item cards with a selection cursor. Cards are split
// into pages sized to the terminal.
type Gallery struct {
	collection *domain.Collection
	columns    int
	keys       *KeyMap
	paginator  paginator.Model
	rows       int
	selected   int
	width      int
}

// NewGallery creates an empty gallery with the given number of columns
func NewGallery(columns int, keys *KeyMap) *Gallery {
	if columns <= 0 {
		columns = 1
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = theme.NavEnabledStyle.Render("•")
	p.InactiveDot = theme.NavDisabledStyle.Render("•")

	g := &Gallery{
		collection: domain.NewCollection(nil, domain.UnknownTotal),
		columns:    columns,
		keys:       keys,
		paginator:  p,
		rows:       1,
	}
	g.syncPaginator()
	return g
}

// SetItems replaces the cards. total may be domain.UnknownTotal.
func (g *Gallery) SetItems(items []domain.PreviewItem, total int) {
	g.collection = domain.NewCollection(items, total)
	g.Select(g.selected)
}

// AppendPage adds a page fetched at offset. A page shorter than requested
// marks the end of the source. Pages for another offset are ignored.
func (g *Gallery) AppendPage(offset, requested int, items []domain.PreviewItem) bool {
	if offset != g.collection.Len() {
		return false
	}
	g.collection.Append(items)
	if len(items) < requested {
		g.collection.MarkExhausted()
	}
	g.syncPaginator()
	return true
}

// SetSize recomputes how many rows fit on a page
func (g *Gallery) SetSize(width, height int) {
	g.width = width
	g.rows = max(1, (height-chromeLines)/cardHeight)
	g.syncPaginator()
}

// Items returns a copy of the loaded cards
func (g *Gallery) Items() []domain.PreviewItem {
	return g.collection.Items()
}

// Len is the number of loaded cards
func (g *Gallery) Len() int {
	return g.collection.Len()
}

// Total is the known number of items, or domain.UnknownTotal
func (g *Gallery) Total() int {
	return g.collection.Total()
}

// CanGrow reports whether more cards may be fetched
func (g *Gallery) CanGrow() bool {
	return g.collection.CanGrow()
}

// Remaining is how many cards are left to fetch, or domain.UnknownTotal
func (g *Gallery) Remaining() int {
	return g.collection.Remaining()
}

// Selected is the index of the selected card
func (g *Gallery) Selected() int {
	return g.selected
}

// Select moves the selection, clamped to the loaded cards
func (g *Gallery) Select(index int) {
	g.selected = max(0, domain.ClampCursor(index, g.collection.Len()))
	g.syncPaginator()
}

// NeedsMore reports whether the selection is on the last loaded row and
// the source can still grow
func (g *Gallery) NeedsMore() bool {
	return g.collection.CanGrow() && g.selected >= g.collection.Len()-g.columns
}

func (g *Gallery) perPage() int {
	return g.columns * g.rows
}

func (g *Gallery) syncPaginator() {
	g.paginator.PerPage = g.perPage()
	g.paginator.SetTotalPages(max(1, g.collection.Len()))
	g.paginator.Page = g.selected / g.perPage()
}

// HandleKey moves the selection. It reports whether the key was consumed.
func (g *Gallery) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, g.keys.Gallery.Left):
		g.Select(g.selected - 1)
	case key.Matches(msg, g.keys.Gallery.Right):
		g.Select(g.selected + 1)
	case key.Matches(msg, g.keys.Gallery.Up):
		g.Select(g.selected - g.columns)
	case key.Matches(msg, g.keys.Gallery.Down):
		g.Select(g.selected + g.columns)
	case key.Matches(msg, g.keys.Gallery.NextPage):
		g.Select(g.selected + g.perPage())
	case key.Matches(msg, g.keys.Gallery.PrevPage):
		g.Select(g.selected - g.perPage())
	default:
		return false
	}
	return true
}

// View renders the current page of cards and the page dots
func (g *Gallery) View() string {
	if g.collection.Len() == 0 {
		return theme.StatusLineStyle.Render("No items to show.")
	}

	cardWidth := max(minCardWidth, g.width/g.columns-2)
	start, end := g.paginator.GetSliceBounds(g.collection.Len())

	var rows []string
	var row []string
	for i := start; i < end; i++ {
		item, _ := g.collection.At(i)
		row = append(row, renderCard(item, cardWidth-4, i == g.selected))
		if len(row) == g.columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if g.paginator.TotalPages > 1 {
		grid += "\n" + g.paginator.View()
	}
	return grid
}

func renderCard(item domain.PreviewItem, innerWidth int, selected bool) string {
	kindLine := theme.KindStyle(item.Kind).Render(item.Kind.Symbol() + " " + string(item.Kind))
	titleLine := theme.CardTitleStyle.Render(truncate(item.Title, innerWidth))

	issueLine := ""
	if item.HasIssues() {
		issueLine = theme.CardIssueStyle.Render(fmt.Sprintf("⚠ %d %s", len(item.Issues), plural(len(item.Issues), "issue")))
	}

	style := theme.CardStyle
	if selected {
		style = theme.CardSelectedStyle
	}
	return style.Width(innerWidth + 2).Render(strings.Join([]string{kindLine, titleLine, issueLine}, "\n"))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
