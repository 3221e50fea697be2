// Package ast defines types for modeling the AST (Abstract Syntax
// Tree) for the type-expression annotation language.
//
// All nodes of the tree implement the Node interface. Nodes that can
// stand alone as a complete type expression additionally implement
// TypeStmt, which is the root type returned by the parser. The set of
// node kinds is closed: consumers should switch exhaustively on
// Node.Kind rather than perform open-ended type assertions.
//
// Position information is a single byte offset into the original
// source string, assigned at construction time from the token that
// triggered the node and immutable afterwards. There is no line or
// column tracking here; annotation sources are single expressions, and
// callers that need caret rendering should use the diag package.
//
// Every node supports a lossless round trip through a plain keyed
// structure via Encode and Decode. Decode validates the presence and
// type of every required field and fails with a descriptive error
// rather than defaulting, so a serialized tree survives persistence
// unchanged or not at all.
//
// Creation of AST nodes is normally the parser's job. Code that builds
// nodes directly must respect the invariants documented on each type;
// in particular a GenericType always carries at least one type
// argument.
package ast
