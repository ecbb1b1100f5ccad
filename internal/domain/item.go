package domain

import (
	"fmt"
	"strings"
)

// ItemKind is the content type tag of a preview item
type ItemKind string

const (
	KindDocument ItemKind = "document"
	KindImage    ItemKind = "image"
	KindPDF      ItemKind = "pdf"
)

// Kind symbols (Unicode)
const (
	SymbolDocument = "▤"
	SymbolImage    = "▣"
	SymbolPDF      = "▥"
)

// AllKinds lists the kinds in the order the demo source cycles through them
var AllKinds = []ItemKind{KindImage, KindPDF, KindDocument}

// ParseItemKind validates a kind string (case-insensitive)
func ParseItemKind(s string) (ItemKind, error) {
	kind := ItemKind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case KindDocument, KindImage, KindPDF:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Symbol returns the glyph used for the kind in card thumbnails
func (k ItemKind) Symbol() string {
	switch k {
	case KindImage:
		return SymbolImage
	case KindPDF:
		return SymbolPDF
	case KindDocument:
		return SymbolDocument
	default:
		return "?"
	}
}

// MetadataEntry is one key/value pair of item metadata
type MetadataEntry struct {
	Key   string
	Value string
}

// Metadata is an ordered string mapping. Order is display order.
type Metadata []MetadataEntry

// Get returns the value for key and whether it was present
func (m Metadata) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// PreviewItem is a single browsable asset. Treat it as immutable once built.
type PreviewItem struct {
	ContentRef string
	ID         string
	Issues     []string
	Kind       ItemKind
	Metadata   Metadata
	Title      string
}

// HasIssues reports whether the item carries at least one issue.
// A nil and an empty issue list both mean "no issues".
func (p PreviewItem) HasIssues() bool {
	return len(p.Issues) > 0
}

// Validate checks the fields a catalog needs to store the item
func (p PreviewItem) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("preview item has empty id")
	}
	if _, err := ParseItemKind(string(p.Kind)); err != nil {
		return err
	}
	return nil
}
