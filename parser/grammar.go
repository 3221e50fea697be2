package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// typeLexer is the token-pattern table handed to the scanning engine.
// Rules are ordered; the first match wins. Whitespace is the skip set
// (elided below) and anything no rule covers is a lexer error, which
// the facade surfaces as an unrecognized-token diagnostic.
var typeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "Int", Pattern: `[+-]?(?:0[xX][0-9a-fA-F]+|[0-9]+)`},
	{Name: "String", Pattern: `'(?:\\.|[^'\\])*'|"(?:\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `\\?[a-zA-Z_\x80-\xff][\\a-zA-Z0-9_\x80-\xff-]*`},
	{Name: "Punct", Pattern: `[|&?:=(){}<>\[\],]`},
})

// The raw production tree. These types exist only to describe the
// grammar to the engine; the builder reduces them into ast nodes.
// Alternation membership for rawExpr and rawAtom is supplied at
// construction time via participle.Union, which is how the feature
// toggles remove whole productions from the grammar.

// rawExpr is the initial production: a conditional (when enabled) or a
// plain union expression.
type rawExpr interface{ rawExpr() }

// rawAtom is a single unsuffixed operand of a union or intersection.
type rawAtom interface{ rawAtom() }

type typeDocument struct {
	Expr   rawExpr `parser:"@@"`
	EndPos lexer.Position
}

type condExpr struct {
	Pos     lexer.Position
	Subject unionExpr `parser:"@@ 'is'"`
	Negated bool      `parser:"@'not'?"`
	Target  unionExpr `parser:"@@ '?'"`
	Then    rawExpr   `parser:"@@ ':'"`
	Else    rawExpr   `parser:"@@"`
}

func (condExpr) rawExpr() {}

type unionExpr struct {
	Pos   lexer.Position
	First interExpr   `parser:"@@"`
	Rest  []interExpr `parser:"( '|' @@ )*"`
}

func (unionExpr) rawExpr() {}

type interExpr struct {
	Pos   lexer.Position
	First suffixExpr   `parser:"@@"`
	Rest  []suffixExpr `parser:"( '&' @@ )*"`
}

type suffixExpr struct {
	Pos      lexer.Position
	Atom     rawAtom  `parser:"@@"`
	Brackets []string `parser:"( @'[' ']' )*"`
}

type intLit struct {
	Pos lexer.Position
	Raw string `parser:"@Int"`
}

func (intLit) rawAtom() {}

type strLit struct {
	Pos lexer.Position
	Raw string `parser:"@String"`
}

func (strLit) rawAtom() {}

type nullableExpr struct {
	Pos   lexer.Position
	Inner rawAtom `parser:"'?' @@"`
}

func (nullableExpr) rawAtom() {}

type parenExpr struct {
	Pos   lexer.Position
	Inner rawExpr `parser:"'(' @@ ')'"`
}

func (parenExpr) rawAtom() {}

type shapeExpr struct {
	Pos      lexer.Position
	Name     string       `parser:"@Ident '{'"`
	Fields   []shapeField `parser:"( @@ ( ',' @@ )* )?"`
	Unsealed bool         `parser:"( ',' @Ellipsis | @Ellipsis )? '}'"`
}

func (shapeExpr) rawAtom() {}

type shapeField struct {
	Pos   lexer.Position
	Key   *fieldKey `parser:"( @@ ':' )?"`
	Value unionExpr `parser:"@@"`
}

type fieldKey struct {
	Pos      lexer.Position
	Raw      string `parser:"@( Ident | Int | String )"`
	Optional bool   `parser:"@'?'?"`
}

type callableExpr struct {
	Pos    lexer.Position
	Name   string          `parser:"@Ident '('"`
	Params []callableParam `parser:"( @@ ( ',' @@ )* )? ')'"`
	Return *suffixExpr     `parser:"( ':' @@ )?"`
}

func (callableExpr) rawAtom() {}

type callableParam struct {
	Pos      lexer.Position
	Type     unionExpr `parser:"@@"`
	Variadic bool      `parser:"@Ellipsis?"`
	Optional bool      `parser:"@'='?"`
}

type namedExpr struct {
	Pos     lexer.Position
	Name    string       `parser:"@Ident"`
	Generic *genericArgs `parser:"@@?"`
}

func (namedExpr) rawAtom() {}

// genericArgs is split out so its Pos lands on the '<' token; the
// builder needs that offset to report an empty argument list.
type genericArgs struct {
	Pos  lexer.Position
	Args []rawExpr `parser:"'<' ( @@ ( ',' @@ )* )? '>'"`
}

// buildEngine compiles the production table for one parser
// configuration. Disabled features are genuinely absent from the
// grammar, so their syntax fails as an ordinary unexpected token
// rather than being specially rejected.
func buildEngine(cfg config) *participle.Parser[typeDocument] {
	exprs := make([]rawExpr, 0, 2)
	if cfg.conditional {
		exprs = append(exprs, condExpr{})
	}
	exprs = append(exprs, unionExpr{})

	atoms := make([]rawAtom, 0, 7)
	if cfg.literals {
		atoms = append(atoms, intLit{}, strLit{})
	}
	atoms = append(atoms, nullableExpr{}, parenExpr{})
	if cfg.shapes {
		atoms = append(atoms, shapeExpr{})
	}
	if cfg.callables {
		atoms = append(atoms, callableExpr{})
	}
	atoms = append(atoms, namedExpr{})

	return participle.MustBuild[typeDocument](
		participle.Lexer(typeLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(1024),
		participle.Union[rawExpr](exprs...),
		participle.Union[rawAtom](atoms...),
	)
}
