// Package diag defines the closed set of diagnostics the type parser
// can raise. Every diagnostic carries the original source text, a byte
// offset into it, and a rendered message, so callers can point a caret
// at the exact position that failed.
package diag

import "fmt"

// Kind classifies a diagnostic. The set is closed; tooling that
// branches on it should match exhaustively.
type Kind int

const (
	// UnexpectedToken: a token was scanned successfully but is not
	// valid at the current grammar position.
	UnexpectedToken Kind = iota + 1
	// UnrecognizedToken: the scanner could not tokenize the input at
	// this position at all.
	UnrecognizedToken
	// Semantic: the syntax matched but the matched shape cannot form a
	// valid AST node (malformed literal, bad arity, ...). Carries a
	// Code naming the violated rule.
	Semantic
	// UnrecognizedSyntax: an engine-level parse failure not
	// classifiable as either token error.
	UnrecognizedSyntax
	// Internal: an uncaught failure from the engine or the builder.
	// The original error is attached as the cause and available via
	// errors.Unwrap.
	Internal
)

func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnrecognizedToken:
		return "unrecognized token"
	case Semantic:
		return "semantic error"
	case UnrecognizedSyntax:
		return "unrecognized syntax"
	case Internal:
		return "internal error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Code is a stable identifier for the semantic rule a Semantic
// diagnostic violated. Codes are part of the public contract; tooling
// may key remediation hints off them.
type Code string

const (
	CodeEmptyTypeArgs Code = "SEM_EMPTY_TYPE_ARGS"
	CodeIntRange      Code = "SEM_INT_RANGE"
	CodeBadEscape     Code = "SEM_BAD_ESCAPE"
	CodeBadShapeName  Code = "SEM_BAD_SHAPE_NAME"
)

// Diagnostic is a structured parse failure. It implements error; the
// Offset always lies within [0, len(Source)].
type Diagnostic struct {
	Kind   Kind
	Code   Code // set only when Kind == Semantic
	Offset int
	Source string

	msg   string
	cause error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at offset %d", d.msg, d.Offset)
}

// Message returns the human-readable message without the offset
// suffix.
func (d *Diagnostic) Message() string { return d.msg }

// Unwrap returns the underlying cause. It is non-nil only for
// Internal diagnostics.
func (d *Diagnostic) Unwrap() error { return d.cause }

func clampOffset(offset int, source string) int {
	if offset < 0 {
		return 0
	}
	if offset > len(source) {
		return len(source)
	}
	return offset
}

// NewUnexpectedToken reports a well-formed token that the grammar
// cannot accept at its position.
func NewUnexpectedToken(source, token string, offset int) *Diagnostic {
	return &Diagnostic{
		Kind:   UnexpectedToken,
		Offset: clampOffset(offset, source),
		Source: source,
		msg:    fmt.Sprintf("unexpected token %q", token),
	}
}

// NewUnrecognizedToken reports input the scanner could not tokenize.
func NewUnrecognizedToken(source string, offset int) *Diagnostic {
	offset = clampOffset(offset, source)
	text := source[offset:]
	if len(text) > 10 {
		text = text[:10]
	}
	return &Diagnostic{
		Kind:   UnrecognizedToken,
		Offset: offset,
		Source: source,
		msg:    fmt.Sprintf("unrecognized token starting at %q", text),
	}
}

// NewSemantic reports a construction-time impossibility: the syntax
// matched, but no valid node can be built from it.
func NewSemantic(source string, offset int, code Code, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:   Semantic,
		Code:   code,
		Offset: clampOffset(offset, source),
		Source: source,
		msg:    fmt.Sprintf(format, args...),
	}
}

// NewUnrecognizedSyntax reports a generic engine-level parse failure.
func NewUnrecognizedSyntax(source string, offset int) *Diagnostic {
	return &Diagnostic{
		Kind:   UnrecognizedSyntax,
		Offset: clampOffset(offset, source),
		Source: source,
		msg:    "syntax error",
	}
}

// NewInternal wraps an uncaught engine or builder failure. The cause
// is never discarded; it unwraps from the returned diagnostic.
func NewInternal(source string, offset int, cause error) *Diagnostic {
	return &Diagnostic{
		Kind:   Internal,
		Offset: clampOffset(offset, source),
		Source: source,
		msg:    fmt.Sprintf("internal error: %v", cause),
		cause:  cause,
	}
}
