package viewer

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
)

// Verify interface compliance at compile time
var _ ports.ContentOpener = (*Opener)(nil)

// Opener implements ports.ContentOpener by starting an external viewer
type Opener struct {
	// Viewer overrides $PEEK_VIEWER and the platform default
	Viewer string

	command func(name string, args ...string) *exec.Cmd
}

// NewOpener creates a new viewer opener
func NewOpener(viewer string) *Opener {
	return &Opener{Viewer: viewer, command: exec.Command}
}

// Open starts the viewer on contentRef without waiting for it to exit.
// Priority: Viewer → $PEEK_VIEWER → platform default
func (o *Opener) Open(contentRef string) error {
	target, err := resolveTarget(contentRef)
	if err != nil {
		return err
	}

	viewer, args := o.findViewer(target)
	if viewer == "" {
		return fmt.Errorf("no viewer found. Set $PEEK_VIEWER")
	}

	logging.Logger.Info("Opening viewer", "viewer", viewer, "target", target)

	cmd := o.command(viewer, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start viewer: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Viewer exited with error", "error", err, "viewer", viewer)
		}
	}()

	return nil
}

func (o *Opener) findViewer(target string) (string, []string) {
	if o.Viewer != "" {
		return o.Viewer, []string{target}
	}
	if viewer := os.Getenv("PEEK_VIEWER"); viewer != "" {
		return viewer, []string{target}
	}
	return findPlatformViewer(target)
}

// resolveTarget accepts http(s) and file URLs or an existing local path
func resolveTarget(contentRef string) (string, error) {
	ref := strings.TrimSpace(contentRef)
	if ref == "" {
		return "", fmt.Errorf("item has no content reference")
	}

	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		switch u.Scheme {
		case "http", "https":
			return ref, nil
		case "file":
			return resolveTarget(u.Path)
		default:
			return "", fmt.Errorf("unsupported content scheme %q", u.Scheme)
		}
	}

	if _, err := os.Stat(ref); err != nil {
		return "", fmt.Errorf("content does not exist: %w", err)
	}
	return ref, nil
}
