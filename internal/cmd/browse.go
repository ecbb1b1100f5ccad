package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/peekhq/peek/internal/adapters/viewer"
	"github.com/peekhq/peek/internal/config"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
	"github.com/peekhq/peek/internal/services"
	"github.com/peekhq/peek/internal/ui"
)

// BrowserFlags are the browsing options shared by browse and serve
type BrowserFlags struct {
	Demo            bool `help:"Browse generated demo items instead of the catalog"`
	DemoTotal       int  `help:"Number of demo items" default:"100" env:"PEEK_DEMO_TOTAL"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10" env:"PEEK_ERROR_CLEAR_DELAY"`
	FailEvery       int  `help:"Make every Nth demo fetch fail" default:"0" hidden:""`
	FetchDelayMs    int  `help:"Simulated demo fetch latency in milliseconds" default:"800" env:"PEEK_FETCH_DELAY_MS"`
	GridColumns     int  `help:"Number of card columns in the gallery" default:"4" env:"PEEK_GRID_COLUMNS"`
	Lookahead       int  `help:"Fetch the next page when this close to the last loaded item" default:"2" env:"PEEK_LOOKAHEAD"`
	PageSize        int  `help:"Items fetched per page" default:"10" env:"PEEK_PAGE_SIZE"`
}

// resolve applies the flags over settings.json. A flag wins when it was
// changed from its default or set through its env var.
func (f *BrowserFlags) resolve(settings *config.Settings) (config.BrowserConfig, error) {
	cfg, err := settings.Browser()
	if err != nil {
		return config.BrowserConfig{}, fmt.Errorf("invalid settings.json: %w", err)
	}

	if f.DemoTotal != config.DefaultDemoTotal || envSet("PEEK_DEMO_TOTAL") {
		cfg.DemoTotal = f.DemoTotal
	}
	if f.ErrorClearDelay != config.DefaultErrorClearDelay || envSet("PEEK_ERROR_CLEAR_DELAY") {
		cfg.ErrorClearDelay = time.Duration(f.ErrorClearDelay) * time.Second
	}
	if f.FetchDelayMs != config.DefaultFetchDelayMs || envSet("PEEK_FETCH_DELAY_MS") {
		cfg.FetchDelay = time.Duration(f.FetchDelayMs) * time.Millisecond
	}
	if f.GridColumns != config.DefaultGridColumns || envSet("PEEK_GRID_COLUMNS") {
		cfg.GridColumns = f.GridColumns
	}
	if f.Lookahead != config.DefaultLookahead || envSet("PEEK_LOOKAHEAD") {
		cfg.Lookahead = f.Lookahead
	}
	if f.PageSize != config.DefaultPageSize || envSet("PEEK_PAGE_SIZE") {
		cfg.PageSize = f.PageSize
	}

	if cfg.PageSize <= 0 {
		return config.BrowserConfig{}, fmt.Errorf("page size must be positive, got %d", cfg.PageSize)
	}
	if cfg.Lookahead < 0 {
		return config.BrowserConfig{}, fmt.Errorf("lookahead must not be negative, got %d", cfg.Lookahead)
	}

	if cfg.Keys != nil {
		if err := cfg.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return config.BrowserConfig{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}
	return cfg, nil
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

func previewOptions(cfg config.BrowserConfig) services.PreviewOptions {
	return services.PreviewOptions{
		AlertRetention: cfg.AlertRetention,
		AutoShowAlert:  cfg.AutoShowAlert,
		Lookahead:      cfg.Lookahead,
		PageSize:       cfg.PageSize,
	}
}

// BrowseCmd starts the TUI
type BrowseCmd struct {
	BrowserFlags `embed:""`

	Dev    bool   `help:"Enable development mode (shows version info in the header)"`
	Viewer string `help:"Program used to open item content (overrides $PEEK_VIEWER)"`
}

// Run executes the TUI
func (b *BrowseCmd) Run(cli *CLI) error {
	cfg, err := b.resolve(cli.loadedSettings())
	if err != nil {
		return err
	}

	var source ports.ItemSource = cli.Container.Catalog()
	title := "catalog"
	if b.Demo {
		source = cli.Container.DemoSource(cfg, b.FailEvery)
		title = "demo"
	}

	logging.Logger.Info("Starting peek TUI",
		"source", title,
		"page_size", cfg.PageSize,
		"lookahead", cfg.Lookahead)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	preview := services.NewPreviewService(source, previewOptions(cfg))
	model := ui.NewModel(ctx, ui.ModelOptions{
		DevMode:         b.Dev,
		ErrorClearDelay: cfg.ErrorClearDelay,
		GridColumns:     cfg.GridColumns,
		Keys:            cfg.Keys,
		Opener:          viewer.NewOpener(b.Viewer),
		PageSize:        cfg.PageSize,
		Title:           title,
	}, source, preview, cli.Container.SettingsService)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
