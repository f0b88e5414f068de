// Package jawadb is an embedded, file-backed JSON document store.
//
// A [Document] binds a JSON file to an in-memory value tree. Mutations flow
// through tracked containers ([Map], [List]) that mark the document dirty,
// and [Document.Save] persists the whole tree atomically by writing a
// sibling temp file and renaming it over the target, so a crash mid-save
// leaves the previous file content intact.
//
//	doc, err := jawadb.Open("state.json")
//	if err != nil { ... }
//	defer doc.Close()
//
//	v, err := doc.GetOrInsert("runs", []any{})
//	if err != nil { ... }
//	runs := v.(jawadb.List)
//	runs.Append(1) // tracked: doc is now dirty
//
// A document's root kind (mapping vs sequence) is fixed by the loaded file
// or by the first initializing write and never changes; operations of the
// other kind fail with [KindMismatchError].
//
// Every open document is registered process-wide. [Document.Close] flushes
// a dirty document; a handler installed on first Open flushes all open
// documents on SIGINT/SIGTERM before exiting, and [FlushAll] does the same
// on demand. Sweep errors are discarded per document so one failing flush
// does not block the rest.
//
// Single writer per path is assumed: no file locking is performed, no
// external change detection happens, and a Document is not safe for
// concurrent use without external synchronization. If a signal arrives the
// sweep skips documents whose save is already in flight rather than
// reentering them.
package jawadb
