package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"github.com/peekhq/peek/internal/config"
	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit SettingsEditCmd `cmd:"edit" help:"Edit browsing settings interactively"`
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Set  SettingsSetCmd  `cmd:"set" help:"Set a single setting"`
	Show SettingsShowCmd `cmd:"show" help:"Show the settings file and effective values" default:"1"`
}

// SettingsShowCmd displays settings
type SettingsShowCmd struct {
	Example bool   `help:"Show an example settings.json with every option"`
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settingsFile := cli.Container.SettingsService.Path()

	if s.Example {
		return s.showExample(settingsFile)
	}

	settings, err := cli.Container.SettingsService.Load()
	if err != nil {
		return err
	}
	cfg, err := settings.Browser()
	if err != nil {
		return fmt.Errorf("invalid settings.json: %w", err)
	}

	values := map[string]any{
		"alert_retention":   string(cfg.AlertRetention),
		"auto_show_alert":   cfg.AutoShowAlert,
		"demo_total":        cfg.DemoTotal,
		"error_clear_delay": int(cfg.ErrorClearDelay.Seconds()),
		"fetch_delay_ms":    cfg.FetchDelay.Milliseconds(),
		"grid_columns":      cfg.GridColumns,
		"lookahead":         cfg.Lookahead,
		"page_size":         cfg.PageSize,
	}

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"effective":     values,
		}
		return printJSON(output)
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	printValueTable(values)
	return nil
}

func (s *SettingsShowCmd) showExample(settingsFile string) error {
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()
	printValueTable(example)
	fmt.Println()
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

func printValueTable(values map[string]any) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		var valueStr string
		switch v := values[name].(type) {
		case []string, map[string]any:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, valueStr)
	}
	w.Flush()
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// SettingsSetCmd sets one setting
type SettingsSetCmd struct {
	Name  string `arg:"" help:"Setting name (e.g., page_size, auto_show_alert)"`
	Value string `arg:"" help:"New value"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	if err := cli.Container.SettingsService.Set(s.Name, s.Value); err != nil {
		return fmt.Errorf("%w. Valid settings: %s", err, strings.Join(config.GetSettingNames(), ", "))
	}
	fmt.Printf("Set '%s' to: %s\n", s.Name, s.Value)
	return nil
}

// SettingsEditCmd edits the browsing settings with a form
type SettingsEditCmd struct{}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	svc := cli.Container.SettingsService
	settings, err := svc.Load()
	if err != nil {
		return err
	}
	cfg, err := settings.Browser()
	if err != nil {
		return fmt.Errorf("invalid settings.json: %w", err)
	}

	autoShow := cfg.AutoShowAlert
	columns := strconv.Itoa(cfg.GridColumns)
	lookahead := strconv.Itoa(cfg.Lookahead)
	pageSize := strconv.Itoa(cfg.PageSize)
	retention := string(cfg.AlertRetention)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Page size").
				Description("Items fetched per page").
				Value(&pageSize).
				Validate(validateInt(1)),
			huh.NewInput().
				Title("Lookahead").
				Description("Fetch when this close to the last loaded item").
				Value(&lookahead).
				Validate(validateInt(0)),
			huh.NewInput().
				Title("Grid columns").
				Value(&columns).
				Validate(validateInt(1)),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show the issue banner automatically?").
				Value(&autoShow),
			huh.NewSelect[string]().
				Title("Manual banner state when auto-show is off").
				Options(
					huh.NewOption("Keep it when moving to another item", string(domain.AlertRetentionPreserve)),
					huh.NewOption("Hide it on every move", string(domain.AlertRetentionReset)),
				).
				Value(&retention),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Cancelled.")
			return nil
		}
		return fmt.Errorf("form failed: %w", err)
	}

	updates := []struct{ name, value string }{
		{"alert_retention", retention},
		{"auto_show_alert", strconv.FormatBool(autoShow)},
		{"grid_columns", columns},
		{"lookahead", lookahead},
		{"page_size", pageSize},
	}
	for _, u := range updates {
		if err := settings.Set(u.name, u.value); err != nil {
			return err
		}
	}

	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Saved %s\n", svc.Path())
	return nil
}

func validateInt(minValue int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < minValue {
			return fmt.Errorf("must be at least %d", minValue)
		}
		return nil
	}
}

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()
	customKeys := cli.loadedSettings().Keys

	if s.Format == "json" {
		result := make(map[string]map[string]any, len(names))
		for _, name := range names {
			entry := map[string]any{"default": defaults[name]}
			if custom, ok := customKeys[name]; ok && len(custom) > 0 {
				entry["custom"] = custom
			}
			result[name] = entry
		}
		return printJSON(result)
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", cli.Container.SettingsService.Path())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tDescription")
	fmt.Fprintln(w, "────\t───────\t──────\t───────────")
	for _, name := range names {
		customStr := "-"
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			customStr = strings.Join(custom, ", ")
		}
		help := ""
		if def := ui.GetKeyDefinition(name); def != nil {
			help = def.Help
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, strings.Join(defaults[name], ", "), customStr, help)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'peek settings keys set <name> <value>' to customize.")
	return nil
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., next, toggle_alert, quit)"`
	Value string `arg:"" help:"Key binding (e.g., a, ctrl+s, or comma-separated for multiple: right,l)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	svc := cli.Container.SettingsService
	settings, err := svc.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[s.Key] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues splits a comma-separated binding, keeping "," itself usable
func parseKeyValues(value string) []string {
	if value == "," {
		return []string{","}
	}
	var values []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
