package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// Gallery and preview keys are only active in their own view, so they may
// share defaults.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},

	// Gallery keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select card below"},
	{Name: "left", Defaults: []string{"left", "h"}, Help: "select previous card"},
	{Name: "next_page", Defaults: []string{"pgdown", "]"}, Help: "next gallery page"},
	{Name: "open", Defaults: []string{"enter", " "}, Help: "open preview"},
	{Name: "prev_page", Defaults: []string{"pgup", "["}, Help: "previous gallery page"},
	{Name: "right", Defaults: []string{"right", "l"}, Help: "select next card"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select card above"},

	// Preview keys
	{Name: "close", Defaults: []string{"esc"}, Help: "close preview"},
	{Name: "next", Defaults: []string{"right", "l"}, Help: "next item"},
	{Name: "open_external", Defaults: []string{"o"}, Help: "open in external viewer"},
	{Name: "previous", Defaults: []string{"left", "h"}, Help: "previous item"},
	{Name: "retry", Defaults: []string{"r"}, Help: "retry loading more items"},
	{Name: "toggle_alert", Defaults: []string{"a"}, Help: "show/hide issue banner"},
	{Name: "toggle_auto_alert", Defaults: []string{"A"}, Help: "toggle auto-show of issue banner"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
