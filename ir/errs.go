package ir

import "errors"

var (
	// ErrKeyType reports a Go map with non-string keys given to FromGo.
	// JSON objects only admit string keys.
	ErrKeyType = errors.New("non-string map key")
)
