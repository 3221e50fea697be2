package ast

import "fmt"

// Kind identifies the concrete type of a Node. The set of kinds is
// closed; consumers should match exhaustively instead of checking for
// concrete types they happen to know about.
type Kind int8

const (
	KindInvalid Kind = iota
	KindNamed
	KindGeneric
	KindUnion
	KindIntersection
	KindNullable
	KindArray
	KindShape
	KindShapeField
	KindCallable
	KindArgument
	KindConditional
	KindIntLiteral
	KindStringLiteral
)

var kindNames = [...]string{
	KindInvalid:       "invalid",
	KindNamed:         "named",
	KindGeneric:       "generic",
	KindUnion:         "union",
	KindIntersection:  "intersection",
	KindNullable:      "nullable",
	KindArray:         "array",
	KindShape:         "shape",
	KindShapeField:    "shape_field",
	KindCallable:      "callable",
	KindArgument:      "argument",
	KindConditional:   "conditional",
	KindIntLiteral:    "int_literal",
	KindStringLiteral: "string_literal",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
	return kindNames[k]
}

// kindByName is the inverse of kindNames, used by Decode.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// Node is implemented by every element of the tree.
//
// Offset is the byte offset of the node's first token in the original
// source text. It is always non-negative and never changes after
// construction.
type Node interface {
	Offset() int
	Kind() Kind
}

// TypeStmt is implemented by every node that is a complete type
// expression on its own. It is the root type produced by a parse.
//
// ShapeField and Argument are Nodes but not TypeStmts: they only occur
// inside a ShapeType or CallableType.
type TypeStmt interface {
	Node
	typeStmt()
}
