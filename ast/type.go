package ast

// NamedType is a bare type reference such as `int`, `string` or
// `\App\Collection`.
type NamedType struct {
	Off  int
	Name string
}

func (n *NamedType) Offset() int { return n.Off }
func (n *NamedType) Kind() Kind  { return KindNamed }
func (n *NamedType) typeStmt()   {}

// GenericType is a named type applied to a type-argument list, such as
// `Collection<int, string>`. Inner is the base type being
// parameterized and Args holds the arguments in source order.
//
// A GenericType always has at least one argument; an empty argument
// list is rejected by the parser before a node is built.
type GenericType struct {
	Off   int
	Inner TypeStmt
	Args  []TypeStmt
}

func (n *GenericType) Offset() int { return n.Off }
func (n *GenericType) Kind() Kind  { return KindGeneric }
func (n *GenericType) typeStmt()   {}

// UnionType is `A|B|...`. Member order is the source order; it is
// significant for display, not for equivalence.
type UnionType struct {
	Off     int
	Members []TypeStmt
}

func (n *UnionType) Offset() int { return n.Off }
func (n *UnionType) Kind() Kind  { return KindUnion }
func (n *UnionType) typeStmt()   {}

// IntersectionType is `A&B&...`, members in source order.
type IntersectionType struct {
	Off     int
	Members []TypeStmt
}

func (n *IntersectionType) Offset() int { return n.Off }
func (n *IntersectionType) Kind() Kind  { return KindIntersection }
func (n *IntersectionType) typeStmt()   {}

// NullableType is `?T`.
type NullableType struct {
	Off   int
	Inner TypeStmt
}

func (n *NullableType) Offset() int { return n.Off }
func (n *NullableType) Kind() Kind  { return KindNullable }
func (n *NullableType) typeStmt()   {}

// ArrayType is the `T[]` suffix form. `T[][]` nests left, so the
// element of the outer ArrayType is itself an ArrayType.
type ArrayType struct {
	Off  int
	Elem TypeStmt
}

func (n *ArrayType) Offset() int { return n.Off }
func (n *ArrayType) Kind() Kind  { return KindArray }
func (n *ArrayType) typeStmt()   {}

// ConditionalType is `Subject is [not] Target ? Then : Else`. The
// parser records the branches faithfully; it never evaluates them.
type ConditionalType struct {
	Off     int
	Subject TypeStmt
	Negated bool
	Target  TypeStmt
	Then    TypeStmt
	Else    TypeStmt
}

func (n *ConditionalType) Offset() int { return n.Off }
func (n *ConditionalType) Kind() Kind  { return KindConditional }
func (n *ConditionalType) typeStmt()   {}
