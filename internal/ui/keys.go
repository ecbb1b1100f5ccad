package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/peekhq/peek/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Gallery     GalleryKeys
	Preview     PreviewKeys
}

// ApplicationKeys are active in every view
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// GalleryKeys move the card selection
type GalleryKeys struct {
	Down     key.Binding
	Left     key.Binding
	NextPage key.Binding
	Open     key.Binding
	PrevPage key.Binding
	Right    key.Binding
	Up       key.Binding
}

// PreviewKeys drive the preview overlay
type PreviewKeys struct {
	Close           key.Binding
	Next            key.Binding
	OpenExternal    key.Binding
	Previous        key.Binding
	Retry           key.Binding
	ToggleAlert     key.Binding
	ToggleAutoAlert key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit", defaults, customKeys),
			Help:      buildBinding("help", defaults, customKeys),
			Quit:      buildBinding("quit", defaults, customKeys),
		},
		Gallery: GalleryKeys{
			Down:     buildBinding("down", defaults, customKeys),
			Left:     buildBinding("left", defaults, customKeys),
			NextPage: buildBinding("next_page", defaults, customKeys),
			Open:     buildBinding("open", defaults, customKeys),
			PrevPage: buildBinding("prev_page", defaults, customKeys),
			Right:    buildBinding("right", defaults, customKeys),
			Up:       buildBinding("up", defaults, customKeys),
		},
		Preview: PreviewKeys{
			Close:           buildBinding("close", defaults, customKeys),
			Next:            buildBinding("next", defaults, customKeys),
			OpenExternal:    buildBinding("open_external", defaults, customKeys),
			Previous:        buildBinding("previous", defaults, customKeys),
			Retry:           buildBinding("retry", defaults, customKeys),
			ToggleAlert:     buildBinding("toggle_alert", defaults, customKeys),
			ToggleAutoAlert: buildBinding("toggle_auto_alert", defaults, customKeys),
		},
	}
}

// GalleryHelp returns the bindings shown in the gallery footer
func (k KeyMap) GalleryHelp() []key.Binding {
	return []key.Binding{
		k.Gallery.Open,
		k.Gallery.NextPage,
		k.Application.Help,
		k.Application.Quit,
	}
}

// PreviewHelp returns the bindings shown in the preview footer
func (k KeyMap) PreviewHelp() []key.Binding {
	return []key.Binding{
		k.Preview.Previous,
		k.Preview.Next,
		k.Preview.ToggleAlert,
		k.Preview.ToggleAutoAlert,
		k.Preview.Close,
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	helpKeys := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		helpKeys[i] = k
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(helpKeys, "/"), def.Help),
	)
}
