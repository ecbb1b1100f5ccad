//go:build windows

package viewer

func findPlatformViewer(target string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", target}
}
