package jawadb

import (
	"fmt"

	"github.com/jawadb/go-jawadb/debug"
	"github.com/jawadb/go-jawadb/ir"
)

// Map is a tracked mapping container. Every mutation through it marks the
// owning document dirty, and every nested mapping or sequence it hands out
// is itself tracked against the same document. The document back-reference
// is only used for change notification.
type Map struct {
	doc  *Document
	node *ir.Node
}

// List is the tracked sequence counterpart of Map.
type List struct {
	doc  *Document
	node *ir.Node
}

// wrap converts a caller-supplied value into a node owned by d. Container
// handles and nodes are cloned so the tree keeps single-parent
// back-references even when a caller inserts a value it obtained elsewhere.
func (d *Document) wrap(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case Map:
		return x.node.Clone(), nil
	case List:
		return x.node.Clone(), nil
	}
	n, err := ir.FromGo(v)
	if err != nil {
		return nil, err
	}
	if debug.Wrap() {
		debug.Logf("jawadb: wrapped %T as %s", v, n.Kind)
	}
	return n, nil
}

// out converts a stored node into the caller-facing form: container nodes
// become tracked handles, scalars become plain Go values.
func (d *Document) out(n *ir.Node) any {
	switch n.Kind {
	case ir.ObjectKind:
		return Map{doc: d, node: n}
	case ir.ArrayKind:
		return List{doc: d, node: n}
	}
	return ir.ToGo(n)
}

// Node returns the underlying tree node for read-only rendering. Mutating
// through it bypasses change tracking.
func (m Map) Node() *ir.Node { return m.node }

// Node returns the underlying tree node for read-only rendering. Mutating
// through it bypasses change tracking.
func (l List) Node() *ir.Node { return l.node }

// Get is a pure lookup: it reports absence instead of materializing a
// default and never modifies the container.
func (m Map) Get(key string) (any, bool) {
	n, ok := m.node.Field(key)
	if !ok {
		return nil, false
	}
	return m.doc.out(n), true
}

// GetOrInsert returns the value under key. When key is absent, def is
// wrapped, inserted into the container, and the document is marked dirty —
// a side-effecting read, so that a mutation chained onto the returned
// default (get list-or-empty, then append) is tracked.
func (m Map) GetOrInsert(key string, def any) (any, error) {
	if n, ok := m.node.Field(key); ok {
		return m.doc.out(n), nil
	}
	n, err := m.doc.wrap(def)
	if err != nil {
		return nil, err
	}
	m.node.SetField(key, n)
	m.doc.markModified()
	return m.doc.out(n), nil
}

// Set wraps value and stores it under key.
func (m Map) Set(key string, value any) error {
	n, err := m.doc.wrap(value)
	if err != nil {
		return err
	}
	m.node.SetField(key, n)
	m.doc.markModified()
	return nil
}

// Delete removes key, failing with ErrNotFound when absent.
func (m Map) Delete(key string) error {
	if !m.node.DeleteField(key) {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	m.doc.markModified()
	return nil
}

// Contains is a pure lookup with no side effect.
func (m Map) Contains(key string) bool {
	_, ok := m.node.Field(key)
	return ok
}

// Len returns the number of entries.
func (m Map) Len() int {
	return m.node.Len()
}

// Keys returns the mapping keys in insertion order.
func (m Map) Keys() []string {
	keys := make([]string, len(m.node.Fields))
	copy(keys, m.node.Fields)
	return keys
}

// Append wraps value and adds it to the end of the sequence.
func (l List) Append(value any) error {
	n, err := l.doc.wrap(value)
	if err != nil {
		return err
	}
	l.node.Append(n)
	l.doc.markModified()
	return nil
}

// Extend wraps each value and appends them in order. Nothing is appended
// unless every value wraps.
func (l List) Extend(values ...any) error {
	wrapped := make([]*ir.Node, len(values))
	for i, v := range values {
		n, err := l.doc.wrap(v)
		if err != nil {
			return err
		}
		wrapped[i] = n
	}
	for _, n := range wrapped {
		l.node.Append(n)
	}
	if len(wrapped) > 0 {
		l.doc.markModified()
	}
	return nil
}

// Concat is the += form of Extend.
func (l List) Concat(values ...any) error {
	return l.Extend(values...)
}

// Contains reports whether any element equals value. The comparison is
// structural, so mapping and sequence values match element-wise. A value
// that cannot be wrapped matches nothing.
func (l List) Contains(value any) bool {
	n, err := l.doc.wrap(value)
	if err != nil {
		return false
	}
	for _, elt := range l.node.Values {
		if ir.Equal(elt, n) {
			return true
		}
	}
	return false
}

// Set replaces the element at index i, failing with ErrIndexRange when out
// of range.
func (l List) Set(i int, value any) error {
	n, err := l.doc.wrap(value)
	if err != nil {
		return err
	}
	if !l.node.SetIndex(i, n) {
		return fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	l.doc.markModified()
	return nil
}

// Delete removes the element at index i, failing with ErrIndexRange when
// out of range.
func (l List) Delete(i int) error {
	if !l.node.DeleteIndex(i) {
		return fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	l.doc.markModified()
	return nil
}

// At returns the element at index i.
func (l List) At(i int) (any, error) {
	if i < 0 || i >= l.node.Len() {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	return l.doc.out(l.node.Values[i]), nil
}

// Len returns the number of elements.
func (l List) Len() int {
	return l.node.Len()
}
