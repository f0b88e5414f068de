package jawadb

import (
	jsonpatch "github.com/evanphx/json-patch"
)

// UnsavedChanges returns an RFC 7386 merge patch describing what Save would
// change relative to the last persisted snapshot, or nil when the document
// is clean. For a document never persisted, the patch is taken against an
// empty container of the root's kind.
func (d *Document) UnsavedChanges() ([]byte, error) {
	if !d.dirty || d.root == nil {
		return nil, nil
	}
	cur, err := encodeBytes(d.root)
	if err != nil {
		return nil, err
	}
	base := d.snapshot
	if base == nil {
		switch d.kind {
		case RootSequence:
			base = []byte("[]")
		default:
			base = []byte("{}")
		}
	}
	return jsonpatch.CreateMergePatch(base, cur)
}
