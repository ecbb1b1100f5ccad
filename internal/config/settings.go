package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peekhq/peek/internal/domain"
)

// Defaults applied when a setting is absent
const (
	DefaultAutoShowAlert   = true
	DefaultDemoTotal       = 100
	DefaultErrorClearDelay = 10
	DefaultFetchDelayMs    = 800
	DefaultGridColumns     = 4
	DefaultLookahead       = 2
	DefaultPageSize        = 10
)

// KeyBindingValue supports "a" or ["left", "h"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds key binding overrides keyed by binding name
// (e.g. "next", "toggle_alert")
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown names and keys bound to two actions.
// validNames should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $PEEK_HOME/settings.json
type Settings struct {
	AlertRetention  string            `json:"alert_retention,omitempty"`
	AutoShowAlert   *bool             `json:"auto_show_alert,omitempty"`
	Debug           *bool             `json:"debug,omitempty"`
	DemoTotal       *int              `json:"demo_total,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	FetchDelayMs    *int              `json:"fetch_delay_ms,omitempty"`
	GridColumns     *int              `json:"grid_columns,omitempty"`
	Keys            KeyBindingsConfig `json:"keys,omitempty"`
	Lookahead       *int              `json:"lookahead,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
	PageSize        *int              `json:"page_size,omitempty"`
}

// BrowserConfig is the resolved browsing configuration with defaults applied
type BrowserConfig struct {
	AlertRetention  domain.AlertRetention
	AutoShowAlert   bool
	DemoTotal       int
	ErrorClearDelay time.Duration
	FetchDelay      time.Duration
	GridColumns     int
	Keys            KeyBindingsConfig
	Lookahead       int
	PageSize        int
}

// Browser resolves the settings into a BrowserConfig
func (s *Settings) Browser() (BrowserConfig, error) {
	retention, err := domain.ParseAlertRetention(s.AlertRetention)
	if err != nil {
		return BrowserConfig{}, err
	}

	cfg := BrowserConfig{
		AlertRetention:  retention,
		AutoShowAlert:   boolOr(s.AutoShowAlert, DefaultAutoShowAlert),
		DemoTotal:       intOr(s.DemoTotal, DefaultDemoTotal),
		ErrorClearDelay: time.Duration(intOr(s.ErrorClearDelay, DefaultErrorClearDelay)) * time.Second,
		FetchDelay:      time.Duration(intOr(s.FetchDelayMs, DefaultFetchDelayMs)) * time.Millisecond,
		GridColumns:     intOr(s.GridColumns, DefaultGridColumns),
		Keys:            s.Keys,
		Lookahead:       intOr(s.Lookahead, DefaultLookahead),
		PageSize:        intOr(s.PageSize, DefaultPageSize),
	}

	if cfg.PageSize <= 0 {
		return BrowserConfig{}, fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}
	if cfg.Lookahead < 0 {
		return BrowserConfig{}, fmt.Errorf("lookahead must not be negative, got %d", cfg.Lookahead)
	}
	if cfg.GridColumns <= 0 {
		cfg.GridColumns = DefaultGridColumns
	}

	return cfg, nil
}

// Set updates one setting from its JSON name and a string value
func (s *Settings) Set(name, value string) error {
	switch name {
	case "alert_retention":
		if _, err := domain.ParseAlertRetention(value); err != nil {
			return err
		}
		s.AlertRetention = value
	case "auto_show_alert":
		return setBool(&s.AutoShowAlert, name, value)
	case "debug":
		return setBool(&s.Debug, name, value)
	case "demo_total":
		return setInt(&s.DemoTotal, name, value)
	case "error_clear_delay":
		return setInt(&s.ErrorClearDelay, name, value)
	case "fetch_delay_ms":
		return setInt(&s.FetchDelayMs, name, value)
	case "grid_columns":
		return setInt(&s.GridColumns, name, value)
	case "lookahead":
		return setInt(&s.Lookahead, name, value)
	case "max_log_files":
		return setInt(&s.MaxLogFiles, name, value)
	case "page_size":
		return setInt(&s.PageSize, name, value)
	default:
		return fmt.Errorf("unknown setting '%s'", name)
	}
	return nil
}

func setBool(dst **bool, name, value string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", name, err)
	}
	*dst = &b
	return nil
}

func setInt(dst **int, name, value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", name, err)
	}
	*dst = &n
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// LoadSettings loads settings from $PEEK_HOME/settings.json.
// A missing file is not an error: it yields empty Settings.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PEEK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to an explicit path
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
