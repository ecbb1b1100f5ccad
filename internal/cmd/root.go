package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/peekhq/peek/internal/config"
	"github.com/peekhq/peek/internal/logging"
)

const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Browse   BrowseCmd   `cmd:"" help:"Browse the catalog (default)" default:"1"`
	Catalog  CatalogCmd  `cmd:"catalog" help:"Manage the item catalog (seed, list, find, count, clear)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the browser over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Show and change settings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// loadedSettings returns the loaded settings, never nil
func (c *CLI) loadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and the env var is unset.
	if c.settings != nil {
		if c.MaxLogFiles == defaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PEEK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PEEK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// GORM's logger reads PEEK_DEBUG, so export it before the container opens the catalog
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PEEK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PEEK_DEBUG_FILE", logFilePath)
		}
	}

	// Container needs logging.Logger to be initialized
	container, err := NewContainer(config.GetDBPath(), config.GetSettingsPath())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
