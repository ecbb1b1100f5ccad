package services

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/peekhq/peek/internal/config"
	"github.com/peekhq/peek/internal/logging"
)

// SettingsService reads and updates settings.json. It implements
// ports.PreferenceStore so the UI can persist the auto-show toggle.
type SettingsService struct {
	mu   sync.Mutex
	path string
}

// NewSettingsService creates a SettingsService for the given settings file.
// An empty path uses config.GetSettingsPath().
func NewSettingsService(path string) *SettingsService {
	if path == "" {
		path = config.GetSettingsPath()
	}
	return &SettingsService{path: path}
}

// Path returns the settings file location
func (s *SettingsService) Path() string {
	return s.path
}

// Load reads the settings file
func (s *SettingsService) Load() (*config.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return config.LoadSettingsFrom(s.path)
}

// Save writes the settings file after validating it
func (s *SettingsService) Save(settings *config.Settings) error {
	if _, err := settings.Browser(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := config.SaveSettingsTo(s.path, settings); err != nil {
		logging.Logger.Error("Failed to save settings", "path", s.path, "error", err)
		return err
	}
	logging.Logger.Info("Settings saved", "path", s.path)
	return nil
}

// Set updates a single setting by its JSON name
func (s *SettingsService) Set(name, value string) error {
	logging.Logger.Info("Updating setting", "name", name, "value", value)

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := config.LoadSettingsFrom(s.path)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := settings.Set(name, value); err != nil {
		return err
	}
	if _, err := settings.Browser(); err != nil {
		return err
	}
	if err := config.SaveSettingsTo(s.path, settings); err != nil {
		logging.Logger.Error("Failed to save settings", "name", name, "error", err)
		return err
	}
	return nil
}

// SetAutoShowAlert persists the auto_show_alert preference
func (s *SettingsService) SetAutoShowAlert(enabled bool) error {
	return s.Set("auto_show_alert", strconv.FormatBool(enabled))
}
