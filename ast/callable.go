package ast

// CallableType is a callable signature such as
// `callable(int, string...): bool`. Name is the identifier in front of
// the parameter list (`callable`, `Closure`, ...). Return is nil when
// the signature has no declared return type.
type CallableType struct {
	Off    int
	Name   string
	Params []*Argument
	Return TypeStmt
}

func (n *CallableType) Offset() int { return n.Off }
func (n *CallableType) Kind() Kind  { return KindCallable }
func (n *CallableType) typeStmt()   {}

// Argument is a single parameter of a callable signature. It owns the
// statement describing the parameter's type, plus the variadic (`...`)
// and optional (`=`) markers.
type Argument struct {
	Off      int
	Value    TypeStmt
	Variadic bool
	Optional bool
}

func (n *Argument) Offset() int { return n.Off }
func (n *Argument) Kind() Kind  { return KindArgument }

// Is reports whether the wrapped type statement is of the given kind.
// It exists for consumers doing light pattern matching on signatures
// without unwrapping the argument first.
func (n *Argument) Is(k Kind) bool {
	return n.Value != nil && n.Value.Kind() == k
}
