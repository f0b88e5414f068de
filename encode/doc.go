// Package encode serializes ir.Node trees to JSON text.
//
// Output is always pretty-printed with 2-space indentation and object keys
// in insertion order, matching the store's on-disk format. Optional
// terminal colors and a YAML rendering exist for inspection tooling.
package encode
