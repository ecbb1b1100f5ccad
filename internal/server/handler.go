package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/services"
	"github.com/peekhq/peek/internal/ui"
)

// sessionModel wraps ui.Model to release per-session resources on quit
type sessionModel struct {
	*ui.Model
	cancel    context.CancelFunc
	endOnce   sync.Once
	release   func() error
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.end()
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// end runs once, on quit or when the connection drops
func (s *sessionModel) end() {
	s.endOnce.Do(func() {
		duration := time.Since(s.startTime)
		s.cancel()

		if s.release != nil {
			if err := s.release(); err != nil {
				logging.Logger.Error("Failed to release source for SSH session",
					"error", err,
					"session_id", s.sessionID,
					"duration", duration.String())
			}
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	})
}

// teaHandler creates a browser model with its own preview session for each
// SSH connection
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	source, release, err := s.opts.Source()
	if err != nil {
		logging.Logger.Error("Failed to open item source for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	cfg := s.opts.Browser
	preview := services.NewPreviewService(source, services.PreviewOptions{
		AlertRetention: cfg.AlertRetention,
		AutoShowAlert:  cfg.AutoShowAlert,
		Lookahead:      cfg.Lookahead,
		PageSize:       cfg.PageSize,
	})

	ctx, cancel := context.WithCancel(sess.Context())
	model := ui.NewModel(ctx, ui.ModelOptions{
		ErrorClearDelay: cfg.ErrorClearDelay,
		GridColumns:     cfg.GridColumns,
		Keys:            cfg.Keys,
		PageSize:        cfg.PageSize,
		Title:           sess.User(),
	}, source, preview, s.opts.Preferences)

	wrapped := &sessionModel{
		Model:     model,
		cancel:    cancel,
		release:   release,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	go func() {
		<-ctx.Done()
		wrapped.end()
	}()

	return wrapped, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel displays a startup error and quits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
