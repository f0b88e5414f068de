// Package parse decodes JSON text into ir.Node trees.
//
// Unlike encoding/json's map-based decoding, the trees produced here keep
// object keys in their source order, so a document round-trips through
// [Parse] and the encode package without key reordering. All parse failures
// wrap [ErrParse].
package parse
