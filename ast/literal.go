package ast

// IntLiteral is a literal-type leaf such as `42` or `0xFF`. Value is
// the parsed number and Raw the exact token text from the source.
type IntLiteral struct {
	Off   int
	Value int64
	Raw   string
}

func (n *IntLiteral) Offset() int { return n.Off }
func (n *IntLiteral) Kind() Kind  { return KindIntLiteral }
func (n *IntLiteral) typeStmt()   {}

// StringLiteral is a literal-type leaf such as `'yes'` or `"a\nb"`.
// Value holds the decoded string with quotes stripped and escape
// sequences resolved; Raw keeps the exact token text.
type StringLiteral struct {
	Off   int
	Value string
	Raw   string
}

func (n *StringLiteral) Offset() int { return n.Off }
func (n *StringLiteral) Kind() Kind  { return KindStringLiteral }
func (n *StringLiteral) typeStmt()   {}
