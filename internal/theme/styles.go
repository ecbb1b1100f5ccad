package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/peekhq/peek/internal/domain"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	StatusLineStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Gallery card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorSelected)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	CardIssueStyle = lipgloss.NewStyle().
			Foreground(ColorAlert).
			Bold(true)
)

// Preview overlay styles
var (
	PreviewFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 2)

	PreviewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)

	PreviewCounterStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	PreviewBodyStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				Align(lipgloss.Center, lipgloss.Center)

	MetadataKeyStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Width(14)

	MetadataValueStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	AlertBannerStyle = lipgloss.NewStyle().
				Background(ColorAlert).
				Foreground(ColorAlertText).
				Bold(true).
				Padding(0, 1)

	NavEnabledStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	NavDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorDimmed)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// KindStyle returns the accent style for an item kind
func KindStyle(kind domain.ItemKind) lipgloss.Style {
	switch kind {
	case domain.KindImage:
		return lipgloss.NewStyle().Foreground(ColorImage)
	case domain.KindPDF:
		return lipgloss.NewStyle().Foreground(ColorPDF)
	case domain.KindDocument:
		return lipgloss.NewStyle().Foreground(ColorDocument)
	default:
		return NormalStyle
	}
}
