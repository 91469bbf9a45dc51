// Package icontable holds the immutable name to codepoint tables used by
// the icon-font rendering path.
//
// A Table is built once and then only read, so it is safe for concurrent
// use without locking.
package icontable

import (
	"maps"
	"slices"
)

// Table maps human-readable icon names to the glyph string drawn by an
// icon font. The zero value is an empty table.
type Table struct {
	entries map[string]string
}

// New returns a Table holding a copy of entries.
// Later changes to entries do not affect the table.
func New(entries map[string]string) *Table {
	return &Table{entries: maps.Clone(entries)}
}

// Lookup returns the glyph string for name.
// The second result reports whether the name is present.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	code, ok := t.entries[name]
	return code, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns all icon names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}

// Merge returns a new Table containing the entries of t overridden by
// entries. Neither t nor entries is modified.
func (t *Table) Merge(entries map[string]string) *Table {
	merged := make(map[string]string, t.Len()+len(entries))
	if t != nil {
		maps.Copy(merged, t.entries)
	}
	maps.Copy(merged, entries)
	return &Table{entries: merged}
}
