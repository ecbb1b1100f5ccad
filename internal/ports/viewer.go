package ports

// ContentOpener opens an item's content reference in an external program
type ContentOpener interface {
	Open(contentRef string) error
}
