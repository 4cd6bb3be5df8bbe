package source

import (
	"iter"
	"slices"

	"github.com/taoky/kizami/pkg/logentry"
)

type Origin int

const (
	OriginResource Origin = iota
	OriginSynthetic
)

func (o Origin) String() string {
	switch o {
	case OriginResource:
		return "resource"
	case OriginSynthetic:
		return "synthetic"
	default:
		return "unknown"
	}
}

// Collection is an immutable, chronologically sorted set of entries.
type Collection struct {
	entries []logentry.Entry
	origin  Origin
}

// NewCollection copies and sorts entries. Equal entries keep their input
// order.
func NewCollection(entries []logentry.Entry, origin Origin) *Collection {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, logentry.Entry.Compare)
	return &Collection{entries: sorted, origin: origin}
}

func (c *Collection) Len() int {
	return len(c.entries)
}

func (c *Collection) At(i int) logentry.Entry {
	return c.entries[i]
}

func (c *Collection) Origin() Origin {
	return c.origin
}

// Entries returns a copy of the sorted entries.
func (c *Collection) Entries() []logentry.Entry {
	return slices.Clone(c.entries)
}

func (c *Collection) All() iter.Seq[logentry.Entry] {
	return slices.Values(c.entries)
}

// Filter returns a collection holding the entries for which keep is true.
func (c *Collection) Filter(keep func(logentry.Entry) bool) *Collection {
	filtered := make([]logentry.Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return &Collection{entries: filtered, origin: c.origin}
}

func (c *Collection) Cursor() *Cursor {
	return &Cursor{entries: c.entries}
}

// Cursor is a forward-only, read-only traversal of a collection.
type Cursor struct {
	entries []logentry.Entry
	pos     int
}

func (c *Cursor) HasNext() bool {
	return c.pos < len(c.entries)
}

// Next returns the next entry, or false when the cursor is exhausted.
func (c *Cursor) Next() (logentry.Entry, bool) {
	if !c.HasNext() {
		return logentry.Entry{}, false
	}
	e := c.entries[c.pos]
	c.pos++
	return e, true
}

// Reset rewinds the cursor to the first entry.
func (c *Cursor) Reset() {
	c.pos = 0
}
