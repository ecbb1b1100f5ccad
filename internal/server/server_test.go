package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"github.com/peekhq/peek/internal/adapters/demo"
	"github.com/peekhq/peek/internal/ports"
	"github.com/peekhq/peek/internal/services"
	"github.com/peekhq/peek/internal/ui"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := "# comment\n\nnot a key\n" + string(gossh.MarshalAuthorizedKey(allowed))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
	assert.False(t, isKeyAuthorized(allowed, filepath.Join(t.TempDir(), "missing")))
}

func TestNewServer(t *testing.T) {
	sshDir := filepath.Join(t.TempDir(), "ssh")
	source := demo.NewSource(demo.NewGenerator(), 10, 0)

	srv, err := NewServer(Options{
		AuthorizedKeysPath: filepath.Join(t.TempDir(), "authorized_keys"),
		Host:               "localhost",
		Port:               "0",
		SSHDir:             sshDir,
		Source: func() (ports.ItemSource, func() error, error) {
			return source, nil, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:0", srv.Addr())
	assert.DirExists(t, sshDir)
}

func TestNewServer_RequiresSource(t *testing.T) {
	_, err := NewServer(Options{SSHDir: t.TempDir()})
	assert.Error(t, err)
}

func TestSessionModel_ReleasesOnQuit(t *testing.T) {
	source := demo.NewSource(demo.NewGenerator(), 10, 0)
	preview := services.NewPreviewService(source, services.PreviewOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	released := 0
	m := &sessionModel{
		Model:     ui.NewModel(ctx, ui.ModelOptions{}, source, preview, nil),
		cancel:    cancel,
		release:   func() error { released++; return errors.New("already closed") },
		sessionID: "test@local",
		startTime: time.Now(),
	}

	_, _ = m.Update(tea.QuitMsg{})
	_, _ = m.Update(tea.QuitMsg{})

	assert.Equal(t, 1, released)
	assert.Error(t, ctx.Err())
}

func TestErrorModel(t *testing.T) {
	m := errorModel{err: errors.New("boom")}
	assert.Contains(t, m.View(), "boom")

	_, cmd := m.Update(nil)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

