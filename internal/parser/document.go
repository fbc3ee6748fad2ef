package parser

import (
	"github.com/vk/yamlite/internal/anchor"
	"github.com/vk/yamlite/internal/value"
)

// Document is the result of a successful parse: the root container plus
// the anchor table accumulated along the way. Callers must treat the
// tree as read-only; nothing mutates it after Parse returns.
type Document struct {
	root    value.Value
	anchors *anchor.Table
}

// Root returns the root container. Its kind is KindSequence when the
// first significant input line was a sequence item, KindMapping otherwise.
func (d *Document) Root() value.Value {
	return d.root
}

// IsSequenceRoot reports whether the document root is a sequence.
func (d *Document) IsSequenceRoot() bool {
	return d.root.Kind() == value.KindSequence
}

// Get looks up a key in the root mapping. On a sequence root it fails
// with a type mismatch.
func (d *Document) Get(key string) (value.Value, error) {
	return d.root.Get(key)
}

// Index returns the i-th element of the root sequence. On a mapping root
// it fails with a type mismatch.
func (d *Document) Index(i int) (value.Value, error) {
	return d.root.Index(i)
}

// Len returns the number of root entries.
func (d *Document) Len() int {
	return d.root.Len()
}

// AnchorNames returns the anchor names defined by the document, in
// definition order.
func (d *Document) AnchorNames() []string {
	return d.anchors.Names()
}

// Anchor returns a deep copy of the named anchor's value.
func (d *Document) Anchor(name string) (value.Value, error) {
	return d.anchors.Resolve(name)
}
