package jawadb

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a delete of an absent mapping key.
	ErrNotFound = errors.New("key not found")
	// ErrIndexRange reports a sequence index outside [0, len).
	ErrIndexRange = errors.New("index out of range")
	// ErrUninitialized reports a read against a document whose root has
	// not been materialized yet.
	ErrUninitialized = errors.New("document root is uninitialized")
)

// RootKind is the explicit state of a document root. Once a root is fixed
// as Mapping or Sequence it never changes for the document's lifetime.
type RootKind int

const (
	RootUnset RootKind = iota
	RootMapping
	RootSequence
	// RootScalar marks a loaded document whose top-level value is not a
	// container; such documents only support textual rendering.
	RootScalar
)

func (k RootKind) String() string {
	s, ok := map[RootKind]string{
		RootUnset:    "Unset",
		RootMapping:  "Mapping",
		RootSequence: "Sequence",
		RootScalar:   "Scalar",
	}[k]
	if ok {
		return s
	}
	return "<unknown root kind>"
}

// KindMismatchError reports an operation requiring one root kind invoked on
// a document fixed to another.
type KindMismatchError struct {
	Want, Got RootKind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("document root is %s, not %s", e.Got, e.Want)
}

// PersistenceError reports an I/O failure during the atomic save protocol.
// TempPath names the temporary file involved for diagnosis. The document's
// in-memory state and dirty flag are unchanged, so Save may be retried.
type PersistenceError struct {
	Path     string
	TempPath string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v (temp file %s)", e.Path, e.Err, e.TempPath)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
