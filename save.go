package jawadb

import (
	"bytes"
	"os"

	"github.com/jawadb/go-jawadb/debug"
	"github.com/jawadb/go-jawadb/encode"
	"github.com/jawadb/go-jawadb/ir"
)

// Save persists the document if it is dirty. The whole tree is serialized,
// written to <path>.tmp in the same directory, and renamed over path in one
// step, so a reader never observes a partial file and a failure at any
// point leaves the previous content intact. On failure the dirty flag and
// in-memory state are unchanged and Save may be retried. A clean or
// uninitialized document is a no-op, as is one whose serialization equals
// the last persisted snapshot.
func (d *Document) Save() error {
	if !d.dirty || d.root == nil {
		return nil
	}
	d.saving.Store(true)
	defer d.saving.Store(false)

	data, err := encodeBytes(d.root)
	if err != nil {
		return err
	}
	if bytes.Equal(data, d.snapshot) {
		d.dirty = false
		return nil
	}
	if err := writeFileAtomic(d.path, data); err != nil {
		if debug.Save() {
			debug.Logf("jawadb: save %s failed: %v", d.path, err)
		}
		return err
	}
	if debug.Save() {
		debug.Logf("jawadb: saved %s (%d bytes)", d.path, len(data))
	}
	d.snapshot = data
	d.dirty = false
	return nil
}

func encodeBytes(n *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to path + ".tmp" and renames it over path.
// The temp file lives in the same directory as path so the rename stays on
// one filesystem, which is what makes the replace atomic.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &PersistenceError{Path: path, TempPath: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return &PersistenceError{Path: path, TempPath: tmp, Err: err}
	}
	return nil
}
