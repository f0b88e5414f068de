// Package ir provides the in-memory representation of JSON documents.
//
// A document is a tree of [Node] values. A Node is a tagged union over the
// JSON kinds (null, bool, number, string, object, array) plus an opaque leaf
// kind for Go values whose JSON representability is deferred to
// serialization.
//
// Objects preserve key insertion order: Fields[i] is the key for the value
// at Values[i], so there are always as many fields as values. Arrays use
// Values alone.
//
// Every child node carries a back-reference to its parent (Parent,
// ParentIndex, ParentField). All constructors and mutators maintain these
// references, so from any node the root of its tree is reachable via
// [Node.Root]. The mutators (SetField, DeleteField, Append, SetIndex,
// DeleteIndex) are pure tree operations; change tracking is layered on top
// by the containing document.
//
// Numbers are stored as Int64 when integral, Float64 otherwise, with the
// source text kept verbatim in Number when neither can represent the value.
//
// Nodes are not safe for concurrent mutation.
package ir
