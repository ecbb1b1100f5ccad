package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Item kind colors
const (
	ColorDocument Color = "39"  // Blue
	ColorImage    Color = "42"  // Green
	ColorPDF      Color = "203" // Salmon
)

// UI semantic colors
const (
	ColorAlert     Color = "214" // Orange - issue banner
	ColorAlertText Color = "232" // Near black on the banner
	ColorBorder    Color = "238" // Card borders
	ColorDimmed    Color = "240" // Disabled hints
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "99"  // Selected card border
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorSpinner   Color = "205" // Pink
)
