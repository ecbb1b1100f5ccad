package ui

import (
	"fmt"

	"github.com/peekhq/peek/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "browse assets one at a time",
	Version:   "dev",
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, optional version details and subtitle
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("peek")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.GoVersion))
	}

	appNameLine += theme.StatusLineStyle.Render(" · " + versionInfo.Tagline)
	if subtitle != "" {
		appNameLine += "\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return appNameLine
}
