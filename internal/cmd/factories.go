package cmd

import (
	"github.com/peekhq/peek/internal/adapters/demo"
	adapterstorage "github.com/peekhq/peek/internal/adapters/storage"
	"github.com/peekhq/peek/internal/config"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
	"github.com/peekhq/peek/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	CatalogService  *services.CatalogService
	SettingsService *services.SettingsService

	dbPath    string
	catalog   ports.CatalogRepository
	generator ports.ItemGenerator
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(dbPath, settingsPath string) (*Container, error) {
	catalog, err := adapterstorage.NewSQLiteCatalog(dbPath)
	if err != nil {
		return nil, err
	}

	generator := demo.NewGenerator()

	return &Container{
		CatalogService:  services.NewCatalogService(catalog, catalog, generator),
		SettingsService: services.NewSettingsService(settingsPath),
		catalog:         catalog,
		dbPath:          dbPath,
		generator:       generator,
	}, nil
}

// Catalog returns the shared catalog source
func (c *Container) Catalog() ports.ItemSource {
	return c.catalog
}

// DemoSource creates an in-memory source with simulated latency
func (c *Container) DemoSource(cfg config.BrowserConfig, failEvery int) *demo.Source {
	source := demo.NewSource(c.generator, cfg.DemoTotal, cfg.FetchDelay)
	source.FailEvery = failEvery
	logging.Logger.Info("Using demo source",
		"total", source.Total,
		"delay", cfg.FetchDelay.String(),
		"fail_every", failEvery)
	return source
}

// OpenCatalog opens a separate catalog connection, released by the
// returned func. SSH sessions each get their own.
func (c *Container) OpenCatalog() (ports.ItemSource, func() error, error) {
	catalog, err := adapterstorage.NewSQLiteCatalog(c.dbPath)
	if err != nil {
		return nil, nil, err
	}
	return catalog, catalog.Close, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.catalog != nil {
		return c.catalog.Close()
	}
	return nil
}
