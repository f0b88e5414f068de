package jawadb

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"sync/atomic"

	"github.com/jawadb/go-jawadb/encode"
	"github.com/jawadb/go-jawadb/ir"
	"github.com/jawadb/go-jawadb/parse"
)

// Document is the root handle over a JSON file. It owns the in-memory value
// tree, tracks whether the tree may differ from the last persisted snapshot,
// and persists atomically via Save. A Document is not safe for concurrent
// mutation without external synchronization, and two Documents over the
// same path are last-writer-wins.
type Document struct {
	path string
	kind RootKind
	root *ir.Node

	dirty bool
	// snapshot is the serialization captured at load and after each
	// successful save; Save compares against it to skip no-op writes.
	snapshot []byte
	// saving lets the signal-driven shutdown sweep skip a document whose
	// save is already in flight.
	saving atomic.Bool
}

// Open opens path as a document, or prepares a fresh one if the file does
// not exist. Malformed JSON fails here with an error wrapping
// parse.ErrParse; no document is produced. The returned document is
// registered for the process shutdown sweep until Close.
func Open(path string) (*Document, error) {
	HandleSignals()
	d := &Document{path: path}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Root kind stays unset until the first initializing write.
	case err != nil:
		return nil, fmt.Errorf("load %s: %w", path, err)
	default:
		root, perr := parse.Parse(data)
		if perr != nil {
			return nil, fmt.Errorf("load %s: %w", path, perr)
		}
		d.root = root
		switch root.Kind {
		case ir.ObjectKind:
			d.kind = RootMapping
		case ir.ArrayKind:
			d.kind = RootSequence
		default:
			d.kind = RootScalar
		}
		// Parsed trees hold no opaque values, so this cannot fail.
		d.snapshot, _ = encodeBytes(root)
	}
	registryAdd(d)
	return d, nil
}

// Path returns the filesystem location the document is bound to.
func (d *Document) Path() string {
	return d.path
}

// Kind returns the current root state.
func (d *Document) Kind() RootKind {
	return d.kind
}

// Dirty reports whether the in-memory tree may differ from the last
// persisted snapshot. It does not inspect the file on disk.
func (d *Document) Dirty() bool {
	return d.dirty
}

func (d *Document) markModified() {
	d.dirty = true
}

// EnsureMapping materializes an empty mapping root on a fresh document and
// marks it dirty. It fails with a KindMismatchError when the root is
// already fixed to another kind.
func (d *Document) EnsureMapping() error {
	_, err := d.ensureMapping()
	return err
}

// EnsureSequence is the sequence counterpart of EnsureMapping.
func (d *Document) EnsureSequence() error {
	_, err := d.ensureSequence()
	return err
}

func (d *Document) ensureMapping() (Map, error) {
	switch d.kind {
	case RootMapping:
	case RootUnset:
		d.root = ir.NewObject()
		d.kind = RootMapping
		d.markModified()
	default:
		return Map{}, &KindMismatchError{Want: RootMapping, Got: d.kind}
	}
	return Map{doc: d, node: d.root}, nil
}

func (d *Document) ensureSequence() (List, error) {
	switch d.kind {
	case RootSequence:
	case RootUnset:
		d.root = ir.NewArray()
		d.kind = RootSequence
		d.markModified()
	default:
		return List{}, &KindMismatchError{Want: RootSequence, Got: d.kind}
	}
	return List{doc: d, node: d.root}, nil
}

// Map returns the root mapping container, materializing it on a fresh
// document.
func (d *Document) Map() (Map, error) {
	return d.ensureMapping()
}

// List returns the root sequence container, materializing it on a fresh
// document.
func (d *Document) List() (List, error) {
	return d.ensureSequence()
}

// Get is a pure lookup of a root mapping key: no default materialization,
// no side effects. A fresh document reports absence rather than failing.
func (d *Document) Get(key string) (any, bool, error) {
	if d.kind == RootUnset {
		return nil, false, nil
	}
	if d.kind != RootMapping {
		return nil, false, &KindMismatchError{Want: RootMapping, Got: d.kind}
	}
	v, ok := Map{doc: d, node: d.root}.Get(key)
	return v, ok, nil
}

// GetOrInsert returns the value under key; when absent it wraps def,
// inserts it into the document and marks it dirty, so a mutation chained
// onto the returned default is tracked. This is a side-effecting read.
func (d *Document) GetOrInsert(key string, def any) (any, error) {
	m, err := d.ensureMapping()
	if err != nil {
		return nil, err
	}
	return m.GetOrInsert(key, def)
}

// Set stores value under key in the root mapping.
func (d *Document) Set(key string, value any) error {
	m, err := d.ensureMapping()
	if err != nil {
		return err
	}
	return m.Set(key, value)
}

// Delete removes key from the root mapping, failing with ErrNotFound when
// absent.
func (d *Document) Delete(key string) error {
	m, err := d.ensureMapping()
	if err != nil {
		return err
	}
	return m.Delete(key)
}

// Contains reports whether key is present in a mapping root. On a sequence
// root it is a membership test of key among the elements; membership of
// non-string values goes through List.Contains. A fresh or scalar root
// contains nothing.
func (d *Document) Contains(key string) bool {
	switch d.kind {
	case RootMapping:
		return Map{doc: d, node: d.root}.Contains(key)
	case RootSequence:
		return List{doc: d, node: d.root}.Contains(key)
	}
	return false
}

// Append adds value to the root sequence.
func (d *Document) Append(value any) error {
	l, err := d.ensureSequence()
	if err != nil {
		return err
	}
	return l.Append(value)
}

// Extend appends each value in order.
func (d *Document) Extend(values ...any) error {
	l, err := d.ensureSequence()
	if err != nil {
		return err
	}
	return l.Extend(values...)
}

// Concat is the += form of Extend.
func (d *Document) Concat(values ...any) error {
	return d.Extend(values...)
}

// SetAt replaces the root sequence element at index i.
func (d *Document) SetAt(i int, value any) error {
	l, err := d.ensureSequence()
	if err != nil {
		return err
	}
	return l.Set(i, value)
}

// DeleteAt removes the root sequence element at index i.
func (d *Document) DeleteAt(i int) error {
	l, err := d.ensureSequence()
	if err != nil {
		return err
	}
	return l.Delete(i)
}

// At returns the root sequence element at index i.
func (d *Document) At(i int) (any, error) {
	if d.kind == RootUnset {
		return nil, ErrUninitialized
	}
	if d.kind != RootSequence {
		return nil, &KindMismatchError{Want: RootSequence, Got: d.kind}
	}
	return List{doc: d, node: d.root}.At(i)
}

// Len returns the number of root entries or elements; a fresh document has
// length 0.
func (d *Document) Len() int {
	if d.root == nil {
		return 0
	}
	return d.root.Len()
}

// Render returns the current tree as JSON text. A fresh document renders as
// "{}". Rendering works for any root kind, including scalar roots, which
// support nothing else, and never fails: values Save would reject are
// degraded to their quoted string form.
func (d *Document) Render() string {
	if d.root == nil {
		return "{}"
	}
	if data, err := encodeBytes(d.root); err == nil {
		return strings.TrimSpace(string(data))
	}
	dup := d.root.Clone()
	_ = dup.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if !isPost {
			degradeUnrepresentable(n)
		}
		return true, nil
	})
	return encode.MustString(dup)
}

// degradeUnrepresentable rewrites a leaf the encoder would reject into a
// plain string in place.
func degradeUnrepresentable(n *ir.Node) {
	switch n.Kind {
	case ir.OpaqueKind:
		if _, err := json.Marshal(n.Any); err == nil {
			return
		}
		n.Kind = ir.StringKind
		n.String = fmt.Sprint(n.Any)
		n.Any = nil
	case ir.NumberKind:
		if n.Float64 == nil {
			return
		}
		if f := *n.Float64; math.IsNaN(f) || math.IsInf(f, 0) {
			n.Kind = ir.StringKind
			n.String = fmt.Sprint(f)
			n.Float64 = nil
		}
	}
}

// Close flushes the document if dirty and removes it from the shutdown
// registry. The flush error, if any, is returned; the document is
// deregistered regardless.
func (d *Document) Close() error {
	registryRemove(d)
	return d.Save()
}
