package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"github.com/peekhq/peek/internal/adapters/viewer"
	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/services"
)

// CatalogCmd manages the stored catalog
type CatalogCmd struct {
	Clear CatalogClearCmd `cmd:"clear" help:"Remove every item from the catalog"`
	Count CatalogCountCmd `cmd:"count" help:"Show how many items the catalog holds"`
	Find  CatalogFindCmd  `cmd:"find" help:"Fuzzy-search item titles"`
	List  CatalogListCmd  `cmd:"list" help:"List catalog items" default:"1"`
	Seed  CatalogSeedCmd  `cmd:"seed" help:"Add generated demo items to the catalog"`
	Show  CatalogShowCmd  `cmd:"show" help:"Show one item with its metadata and issues"`
}

// CatalogSeedCmd adds generated items
type CatalogSeedCmd struct {
	Count   int  `help:"Number of items to add" default:"100" short:"n"`
	Replace bool `help:"Clear the catalog before seeding"`
}

// Run executes the seed command
func (c *CatalogSeedCmd) Run(cli *CLI) error {
	added, err := cli.Container.CatalogService.Seed(context.Background(), services.CatalogSeedParams{
		Count:   c.Count,
		Replace: c.Replace,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added %d items to the catalog.\n", added)
	return nil
}

// CatalogListCmd lists items
type CatalogListCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json" short:"f"`
	Limit  int    `help:"Maximum number of items to show (0 = all)" default:"0" short:"l"`
}

// Run executes the list command
func (c *CatalogListCmd) Run(cli *CLI) error {
	items, err := cli.Container.CatalogService.List(context.Background())
	if err != nil {
		return err
	}
	if c.Limit > 0 && len(items) > c.Limit {
		items = items[:c.Limit]
	}

	if c.Format == "json" {
		return printItemsJSON(items)
	}

	if len(items) == 0 {
		fmt.Println("The catalog is empty. Run 'peek catalog seed' to add demo items.")
		return nil
	}
	renderItemTable(items)
	return nil
}

// CatalogFindCmd fuzzy-searches titles
type CatalogFindCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json" short:"f"`
	Limit  int    `help:"Maximum number of matches" default:"10" short:"l"`
	Query  string `arg:"" help:"Text to match against item titles"`
}

// Run executes the find command
func (c *CatalogFindCmd) Run(cli *CLI) error {
	ctx := context.Background()
	results, err := cli.Container.CatalogService.Find(ctx, c.Query, c.Limit)
	if err != nil {
		return err
	}

	if c.Format == "json" {
		items := make([]domain.PreviewItem, len(results))
		for i, r := range results {
			items[i] = r.Item
		}
		return printItemsJSON(items)
	}

	if len(results) == 0 {
		fmt.Printf("No items match %q.\n", c.Query)
		suggestions, err := cli.Container.CatalogService.Suggest(ctx, c.Query, 3)
		if err == nil && len(suggestions) > 0 {
			fmt.Printf("Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return nil
	}

	items := make([]domain.PreviewItem, len(results))
	for i, r := range results {
		items[i] = r.Item
	}
	renderItemTable(items)
	return nil
}

// CatalogCountCmd prints the item count
type CatalogCountCmd struct{}

// Run executes the count command
func (c *CatalogCountCmd) Run(cli *CLI) error {
	count, err := cli.Container.CatalogService.Count(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(count)
	return nil
}

// CatalogClearCmd removes every item
type CatalogClearCmd struct {
	Yes bool `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the clear command
func (c *CatalogClearCmd) Run(cli *CLI) error {
	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Remove every item from the catalog?").
			Affirmative("Remove").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled.")
				return nil
			}
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := cli.Container.CatalogService.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Println("Catalog cleared.")
	return nil
}

// CatalogShowCmd prints one item
type CatalogShowCmd struct {
	ID     string `arg:"" help:"Item ID"`
	Open   bool   `help:"Open the item content in an external viewer"`
	Viewer string `help:"Program used to open item content (overrides $PEEK_VIEWER)"`
}

// Run executes the show command
func (c *CatalogShowCmd) Run(cli *CLI) error {
	item, err := cli.Container.CatalogService.Get(context.Background(), c.ID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return fmt.Errorf("no item with ID %q", c.ID)
		}
		return err
	}

	fmt.Printf("%s %s\n", item.Kind.Symbol(), item.Title)
	fmt.Printf("ID:      %s\n", item.ID)
	fmt.Printf("Kind:    %s\n", item.Kind)
	fmt.Printf("Content: %s\n", item.ContentRef)

	if len(item.Metadata) > 0 {
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, entry := range item.Metadata {
			fmt.Fprintf(w, "%s\t%s\n", entry.Key, entry.Value)
		}
		w.Flush()
	}

	if item.HasIssues() {
		fmt.Println()
		fmt.Println("Issues:")
		for _, issue := range item.Issues {
			fmt.Printf("  ⚠ %s\n", issue)
		}
	}

	if c.Open {
		return viewer.NewOpener(c.Viewer).Open(item.ContentRef)
	}
	return nil
}

func renderItemTable(items []domain.PreviewItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tKind\tTitle\tIssues")
	fmt.Fprintln(w, "──\t────\t─────\t──────")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", item.ID, item.Kind, item.Title, len(item.Issues))
	}
	w.Flush()
}

// itemJSON is the CLI's JSON shape for an item
type itemJSON struct {
	ContentRef string            `json:"content_ref"`
	ID         string            `json:"id"`
	Issues     []string          `json:"issues"`
	Kind       string            `json:"kind"`
	Metadata   map[string]string `json:"metadata"`
	Title      string            `json:"title"`
}

func printItemsJSON(items []domain.PreviewItem) error {
	out := make([]itemJSON, len(items))
	for i, item := range items {
		metadata := make(map[string]string, len(item.Metadata))
		for _, entry := range item.Metadata {
			metadata[entry.Key] = entry.Value
		}
		issues := item.Issues
		if issues == nil {
			issues = []string{}
		}
		out[i] = itemJSON{
			ContentRef: item.ContentRef,
			ID:         item.ID,
			Issues:     issues,
			Kind:       string(item.Kind),
			Metadata:   metadata,
			Title:      item.Title,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
