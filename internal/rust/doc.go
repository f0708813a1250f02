// Package rust provides a small Rust AST and a deterministic text emitter.
//
// The AST is a closed tagged union: one struct per node kind, sealed by
// marker methods on the Expr/Stmt/Decl interfaces. Nodes are pure values,
// never mutated after construction and never shared between generation
// calls; each generated function gets a fresh tree.
//
// The emitter serializes a tree from the tree alone (no formatting state
// besides indentation depth) and matches node kinds exhaustively: an
// unrecognized node is an EmitError, i.e. a programmer error in the
// generator, not a user failure.
package rust
