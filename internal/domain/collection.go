package domain

// UnknownTotal marks a collection whose upper bound is not known yet
const UnknownTotal = -1

// Collection is an ordered, append-only store of preview items.
// Insertion order is significant; entries are never removed, reordered or
// deduplicated by ID.
type Collection struct {
	items []PreviewItem
	total int
}

// NewCollection creates a collection seeded with items.
// total is the known upper bound, or UnknownTotal.
func NewCollection(items []PreviewItem, total int) *Collection {
	c := &Collection{}
	c.Initialize(items, total)
	return c
}

// Initialize replaces the contents of the collection
func (c *Collection) Initialize(items []PreviewItem, total int) {
	c.items = append(make([]PreviewItem, 0, len(items)), items...)
	c.total = total
	if c.total != UnknownTotal && c.total < len(c.items) {
		c.total = len(c.items)
	}
}

// Append concatenates items to the end and returns how many were added.
// When the total is known, items beyond it are dropped so that
// Len() never exceeds Total().
func (c *Collection) Append(items []PreviewItem) int {
	if len(items) == 0 {
		return 0
	}
	if c.total != UnknownTotal {
		remaining := c.total - len(c.items)
		if remaining <= 0 {
			return 0
		}
		if len(items) > remaining {
			items = items[:remaining]
		}
	}
	c.items = append(c.items, items...)
	return len(items)
}

// MarkExhausted pins the total to what is loaded; the source has nothing more
func (c *Collection) MarkExhausted() {
	c.total = len(c.items)
}

// Len is the number of loaded items
func (c *Collection) Len() int {
	return len(c.items)
}

// Total is the known upper bound, or UnknownTotal
func (c *Collection) Total() int {
	return c.total
}

// CanGrow reports whether more items may still be fetched
func (c *Collection) CanGrow() bool {
	return c.total == UnknownTotal || len(c.items) < c.total
}

// Remaining is how many items are left to fetch, or UnknownTotal
func (c *Collection) Remaining() int {
	if c.total == UnknownTotal {
		return UnknownTotal
	}
	return c.total - len(c.items)
}

// At returns the item at index i
func (c *Collection) At(i int) (PreviewItem, bool) {
	if i < 0 || i >= len(c.items) {
		return PreviewItem{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the loaded items
func (c *Collection) Items() []PreviewItem {
	return append([]PreviewItem(nil), c.items...)
}
