package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/ports"
)

// Generator produces numbered demo assets. Items are deterministic except
// for the Date entry, which comes from Now.
type Generator struct {
	Now func() time.Time
}

// Verify interface compliance at compile time
var _ ports.ItemGenerator = (*Generator)(nil)

// NewGenerator creates a Generator using the wall clock
func NewGenerator() *Generator {
	return &Generator{Now: time.Now}
}

// Generate returns count items numbered offset+1 .. offset+count
func (g *Generator) Generate(offset, count int) []domain.PreviewItem {
	if count <= 0 {
		return nil
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	date := now().Format("2006-01-02")

	items := make([]domain.PreviewItem, count)
	for i := range items {
		items[i] = buildItem(offset+i+1, date)
	}
	return items
}

func buildItem(n int, date string) domain.PreviewItem {
	kind := domain.AllKinds[n%len(domain.AllKinds)]
	issues := issuesFor(n)

	status := "Approved"
	if len(issues) > 0 {
		status = "Needs Review"
	}

	return domain.PreviewItem{
		ContentRef: fmt.Sprintf("https://picsum.photos/seed/%d/800/600", n),
		ID:         fmt.Sprintf("%d", n),
		Issues:     issues,
		Kind:       kind,
		Metadata: domain.Metadata{
			{Key: "Created By", Value: "Demo User"},
			{Key: "Date", Value: date},
			{Key: "File Size", Value: fmt.Sprintf("%d KB", (n*7919)%5000+500)},
			{Key: "Status", Value: status},
		},
		Title: fmt.Sprintf("Asset #%d - %s", n, strings.ToUpper(string(kind))),
	}
}

// issuesFor flags every 5th asset and every 7th; multiples of 35 get both
func issuesFor(n int) []string {
	var issues []string
	if n%5 == 0 {
		issues = append(issues, "Missing alt text")
	}
	if n%7 == 0 {
		issues = append(issues, "License expires in 30 days")
	}
	return issues
}
