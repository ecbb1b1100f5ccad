package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peekhq/peek/internal/config"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
	"github.com/peekhq/peek/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	BrowserFlags `embed:""`

	AuthorizedKeys string `help:"Path to authorized_keys (default ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Host to bind to" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	cfg, err := s.resolve(cli.loadedSettings())
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting peek SSH server",
		"host", s.Host,
		"port", s.Port,
		"demo", s.Demo)

	factory := cli.Container.OpenCatalog
	if s.Demo {
		demoSource := cli.Container.DemoSource(cfg, s.FailEvery)
		factory = func() (ports.ItemSource, func() error, error) {
			return demoSource, nil, nil
		}
	}

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Browser:            cfg,
		Host:               s.Host,
		Port:               s.Port,
		Preferences:        cli.Container.SettingsService,
		SSHDir:             config.GetSSHDir(),
		Source:             factory,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start blocks until shutdown
	return srv.Start(ctx)
}
