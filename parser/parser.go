// Package parser turns a single type-expression annotation string into
// a typed AST, or a structured diagnostic with a byte offset into the
// original source.
//
// The heavy lifting of scanning and backtracking grammar execution is
// delegated to the participle engine; this package supplies the token
// table, the skip set and the production table, reduces matched
// productions into ast nodes, and classifies every failure into the
// diag taxonomy.
//
// A Parser is built once (compiling the production table is not free)
// and reused sequentially for many Parse calls. One instance is not
// safe for concurrent use: the literal interning pools and the
// last-token offset are mutated per call. Use one instance per
// goroutine.
package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/typelang/typeparse/ast"
	"github.com/typelang/typeparse/diag"
)

type config struct {
	tolerant    bool
	conditional bool
	shapes      bool
	callables   bool
	literals    bool
}

// Option configures a Parser at construction time.
type Option func(*config)

// WithTolerant controls trailing-token tolerance. When enabled, a
// valid type expression followed by unconsumed tokens parses to its
// maximal valid prefix instead of failing.
func WithTolerant(tolerant bool) Option {
	return func(c *config) { c.tolerant = tolerant }
}

// WithConditional toggles the conditional-type production
// (`T is U ? A : B`).
func WithConditional(enabled bool) Option {
	return func(c *config) { c.conditional = enabled }
}

// WithShapes toggles the shape production (`array{a: int}`).
func WithShapes(enabled bool) Option {
	return func(c *config) { c.shapes = enabled }
}

// WithCallables toggles the callable-signature production
// (`callable(int): string`).
func WithCallables(enabled bool) Option {
	return func(c *config) { c.callables = enabled }
}

// WithLiterals toggles the literal-type productions (`123`, `'ok'`).
func WithLiterals(enabled bool) Option {
	return func(c *config) { c.literals = enabled }
}

// Parser parses type-expression annotations. All feature productions
// are enabled by default; tolerant mode is off by default.
type Parser struct {
	tolerant   bool
	engine     *participle.Parser[typeDocument]
	lastOffset int
}

// New compiles the grammar for the given options and returns a ready
// parser.
func New(opts ...Option) *Parser {
	cfg := config{
		conditional: true,
		shapes:      true,
		callables:   true,
		literals:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{
		tolerant: cfg.tolerant,
		engine:   buildEngine(cfg),
	}
}

// Parse parses one type expression. It returns (nil, nil) when the
// source holds nothing but skip tokens, the AST root on success, and a
// *diag.Diagnostic otherwise. A diagnostic and an AST are mutually
// exclusive; no partial tree is ever returned alongside an error.
func (p *Parser) Parse(source string) (ast.TypeStmt, error) {
	p.lastOffset = 0
	if strings.Trim(source, " \t\r\n") == "" {
		return nil, nil
	}

	var parseOpts []participle.ParseOption
	if p.tolerant {
		parseOpts = append(parseOpts, participle.AllowTrailing(true))
	}
	doc, err := p.engine.ParseString("", source, parseOpts...)
	if err != nil {
		return nil, p.fail(source, err)
	}

	stmt, err := newBuilder(source).reduce(doc.Expr)
	if err != nil {
		return nil, p.fail(source, err)
	}
	p.lastOffset = doc.EndPos.Offset
	return stmt, nil
}

// LastTokenOffset reports how far the previous Parse call got: the
// end offset of the last token consumed by a successful (possibly
// partial, in tolerant mode) match, or the diagnostic offset after a
// failure. Callers doing incremental parsing, such as completion at a
// cursor, use this to find where the valid prefix ended.
func (p *Parser) LastTokenOffset() int {
	return p.lastOffset
}

func (p *Parser) fail(source string, err error) *diag.Diagnostic {
	d := translate(source, err)
	p.lastOffset = d.Offset
	return d
}
