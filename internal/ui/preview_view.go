package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/services"
	"github.com/peekhq/peek/internal/theme"
)

const (
	maxPreviewWidth = 84
	previewBodyRows = 7
)

// bodyRenderers draw the content area for each item kind
var bodyRenderers = map[domain.ItemKind]func(item domain.PreviewItem, width int) string{
	domain.KindImage: func(item domain.PreviewItem, width int) string {
		return theme.KindStyle(item.Kind).Render(strings.Repeat(domain.SymbolImage+" ", 3)) + "\n\n" +
			truncate(item.ContentRef, width)
	},
	domain.KindPDF: func(item domain.PreviewItem, width int) string {
		return theme.KindStyle(item.Kind).Render(domain.SymbolPDF+" PDF document") + "\n\n" +
			theme.StatusLineStyle.Render("page 1") + "\n" +
			truncate(item.ContentRef, width)
	},
	domain.KindDocument: func(item domain.PreviewItem, width int) string {
		return theme.KindStyle(item.Kind).Render(domain.SymbolDocument+" document") + "\n\n" +
			theme.StatusLineStyle.Render("no inline preview available")
	},
}

// previewView holds what renderPreview needs besides the session snapshot
type previewView struct {
	keys        *KeyMap
	spinnerView string
	width       int
}

// renderPreview draws the overlay for an open session
func (v previewView) render(state services.PreviewState) string {
	if !state.IsOpen || state.CurrentItem == nil {
		return ""
	}
	item := *state.CurrentItem

	frameWidth := min(maxPreviewWidth, max(40, v.width-4))
	inner := frameWidth - 6 // border + padding

	var sections []string
	sections = append(sections, v.renderTitle(item, state, inner))

	if state.ShowAlert && item.HasIssues() {
		sections = append(sections, renderAlertBanner(item, inner))
	}

	sections = append(sections, v.renderBody(item, inner))

	if meta := renderMetadata(item.Metadata, inner); meta != "" {
		sections = append(sections, meta)
	}

	sections = append(sections, v.renderNav(state, inner))
	return theme.PreviewFrameStyle.Width(frameWidth - 2).Render(strings.Join(sections, "\n\n"))
}

func (v previewView) renderTitle(item domain.PreviewItem, state services.PreviewState, width int) string {
	counter := theme.PreviewCounterStyle.Render(positionLabel(state))
	title := theme.PreviewTitleStyle.Render(truncate(item.Title, width-lipgloss.Width(counter)-2))
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(counter))
	return title + strings.Repeat(" ", gap) + counter
}

// positionLabel renders "3 / 30", or "3 / 20+" while the total is unknown
func positionLabel(state services.PreviewState) string {
	if state.TotalKnown == domain.UnknownTotal {
		return fmt.Sprintf("%d / %d+", state.Cursor+1, state.LoadedCount)
	}
	return fmt.Sprintf("%d / %d", state.Cursor+1, state.TotalKnown)
}

func renderAlertBanner(item domain.PreviewItem, width int) string {
	text := fmt.Sprintf("⚠ %d %s: %s", len(item.Issues), plural(len(item.Issues), "issue"), strings.Join(item.Issues, " · "))
	return theme.AlertBannerStyle.Width(width).Render(truncate(text, width-2))
}

func (v previewView) renderBody(item domain.PreviewItem, width int) string {
	render, ok := bodyRenderers[item.Kind]
	content := "unsupported item kind " + string(item.Kind)
	if ok {
		content = render(item, width-4)
	}
	return theme.PreviewBodyStyle.Width(width - 2).Height(previewBodyRows).Render(content)
}

func renderMetadata(metadata domain.Metadata, width int) string {
	if len(metadata) == 0 {
		return ""
	}
	lines := make([]string, len(metadata))
	for i, entry := range metadata {
		lines[i] = theme.MetadataKeyStyle.Render(entry.Key) +
			theme.MetadataValueStyle.Render(truncate(entry.Value, width-14))
	}
	return strings.Join(lines, "\n")
}

func (v previewView) renderNav(state services.PreviewState, width int) string {
	prev := navLabel("‹ "+v.keys.Preview.Previous.Help().Key, state.HasPrevious && !state.IsLoading)
	next := navLabel(v.keys.Preview.Next.Help().Key+" ›", state.HasNext && !state.IsLoading)

	auto := "off"
	if state.AutoShowAlert {
		auto = "on"
	}
	middle := theme.HelpLabelStyle.Render(fmt.Sprintf("%s alert · %s auto-show: %s · %s close",
		v.keys.Preview.ToggleAlert.Help().Key,
		v.keys.Preview.ToggleAutoAlert.Help().Key,
		auto,
		v.keys.Preview.Close.Help().Key))

	if state.IsLoading {
		middle = v.spinnerView + " " + theme.StatusLineStyle.Render("loading more items...")
	}

	gap := max(1, (width-lipgloss.Width(prev)-lipgloss.Width(next)-lipgloss.Width(middle))/2)
	return prev + strings.Repeat(" ", gap) + middle + strings.Repeat(" ", gap) + next
}

func navLabel(label string, enabled bool) string {
	if enabled {
		return theme.NavEnabledStyle.Render(label)
	}
	return theme.NavDisabledStyle.Render(label)
}
