package ast

// ShapeType is an array/object shape such as
// `array{id: int, name?: string, ...}`. Name is the base identifier
// (`array`, `list`, `object`, ...). Sealed is false when the shape
// ends with `...`, meaning extra members are permitted.
type ShapeType struct {
	Off    int
	Name   string
	Fields []*ShapeField
	Sealed bool
}

func (n *ShapeType) Offset() int { return n.Off }
func (n *ShapeType) Kind() Kind  { return KindShape }
func (n *ShapeType) typeStmt()   {}

// ShapeField is one member of a shape. Key is nil for positional
// members (`array{int, string}`); otherwise it is a *NamedType,
// *IntLiteral or *StringLiteral depending on how the key was written.
// Optional records the `?` marker after the key.
type ShapeField struct {
	Off      int
	Key      Node
	Optional bool
	Value    TypeStmt
}

func (n *ShapeField) Offset() int { return n.Off }
func (n *ShapeField) Kind() Kind  { return KindShapeField }
