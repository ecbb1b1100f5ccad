package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// GetSettingNames returns the JSON names of all settings
func GetSettingNames() []string {
	t := reflect.TypeOf(Settings{})
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		jsonTag := t.Field(i).Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		names = append(names, strings.Split(jsonTag, ",")[0])
	}
	return names
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"next":         []string{"right", "l"},
			"toggle_alert": "a",
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "auto_show_alert"
		case reflect.Int:
			switch fieldName {
			case "demo_total":
				return DefaultDemoTotal
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "fetch_delay_ms":
				return DefaultFetchDelayMs
			case "grid_columns":
				return DefaultGridColumns
			case "lookahead":
				return DefaultLookahead
			case "max_log_files":
				return 1000
			case "page_size":
				return DefaultPageSize
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		if fieldName == "alert_retention" {
			return "preserve"
		}
		return "example"
	}

	return nil
}
