//go:build !darwin && !windows

package viewer

import "os/exec"

var defaultViewers = []string{
	"xdg-open",
	"gio",
	"wslview",
}

func findPlatformViewer(target string) (string, []string) {
	for _, viewer := range defaultViewers {
		if _, err := exec.LookPath(viewer); err == nil {
			if viewer == "gio" {
				return viewer, []string{"open", target}
			}
			return viewer, []string{target}
		}
	}
	return "", nil
}
