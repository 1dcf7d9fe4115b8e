// Package bind implements semantic resolution of parsed GraphQL documents:
// it cross-references every identifier in a document (types, fields,
// arguments, directives, enum members, fragments, variables) against a
// schema and against the document's own declarations, producing a fully
// typed operation tree or a single positioned diagnostic.
//
// # Model
//
// A Binder is built once per document. Construction scans the document's
// fragment definitions into an immutable registry (failing on the first
// duplicate name); BindDocument then resolves each operation in document
// order. Every operation gets a fresh operationScope holding its variable
// declarations, and a root resolver at depth 0. Resolvers are created per
// (current schema type, depth) pair: recursing into a field's
// sub-selections creates a child resolver on the field's result type at
// depth+1, bounded by maxSelectionDepth.
//
// Fragment spreads re-derive the fragment body at every site, resolving
// it with the spreading resolver itself, so the body is checked against
// the spread site's current type and depth. The declared type condition
// is looked up and recorded on the output but does not re-scope field
// lookup during this pass.
//
// Every resolved node is wrapped in Located[T], pairing it with the
// source position of the syntax it came from.
//
// # Errors
//
// Binding is fail-fast: the first violation unwinds the whole document's
// resolution as a *Error carrying a Code from the taxonomy, a message,
// and the exact position of the offending token. There is no partial
// result or multi-diagnostic mode.
//
// # Concurrency
//
// Binding is synchronous and CPU-bound. A Schema is never mutated here,
// so any number of documents may be bound concurrently against one
// Schema; within a document resolution is strictly depth-first and
// sequential.
package bind
