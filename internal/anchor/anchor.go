// Package anchor maintains the named-value table populated while a single
// document is parsed. Resolution is strictly forward: a name must have been
// defined on an earlier line than any reference to it, and lookups of
// undefined names fail rather than defer. The table is owned by one parse
// and is not safe for concurrent use.
package anchor

import (
	"github.com/vk/yamlite/internal/value"
	"github.com/vk/yamlite/internal/yamlerr"
)

// Table maps anchor names to the values captured at their definition
// sites. Definition order is preserved for listing.
type Table struct {
	order   []string
	entries map[string]value.Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]value.Value)}
}

// Define stores a deep copy of v under name. Redefining a name replaces
// the stored value without disturbing copies handed out earlier; the name
// keeps its original position in definition order.
func (t *Table) Define(name string, v value.Value) {
	if _, exists := t.entries[name]; !exists {
		t.order = append(t.order, name)
	}
	t.entries[name] = v.Copy()
}

// Resolve returns a deep copy of the value stored under name. The copy is
// independent of the table: later redefinition never alters it.
func (t *Table) Resolve(name string) (value.Value, error) {
	v, ok := t.entries[name]
	if !ok {
		return value.Value{}, &yamlerr.AnchorNotFoundError{Name: name}
	}
	return v.Copy(), nil
}

// Has reports whether name is defined.
func (t *Table) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Names returns the defined anchor names in definition order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of defined anchors.
func (t *Table) Len() int {
	return len(t.entries)
}
