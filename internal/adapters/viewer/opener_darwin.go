//go:build darwin

package viewer

func findPlatformViewer(target string) (string, []string) {
	return "open", []string{target}
}
