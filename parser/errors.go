package parser

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/typelang/typeparse/diag"
)

// translate classifies any failure surfaced by the scanning engine,
// the grammar engine or the builder into the closed diagnostic
// taxonomy. Nothing is ever swallowed: an error that fits no known
// class is wrapped as an internal diagnostic with the original error
// as its cause.
func translate(source string, err error) *diag.Diagnostic {
	// semantic errors raised inside the builder are already
	// diagnostics and pass through untouched
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		return d
	}

	// input the scanner could not tokenize at all
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return diag.NewUnrecognizedToken(source, lexErr.Pos.Offset)
	}

	// a well-formed token the grammar cannot accept here; a parse that
	// stalls needing more input points at the end of the source
	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		tok := unexpected.Unexpected
		if tok.EOF() {
			return diag.NewUnexpectedToken(source, "<eof>", len(source))
		}
		return diag.NewUnexpectedToken(source, tok.Value, tok.Pos.Offset)
	}

	// any other engine-level failure that still carries a position
	var perr participle.Error
	if errors.As(err, &perr) {
		return diag.NewUnrecognizedSyntax(source, perr.Position().Offset)
	}

	return diag.NewInternal(source, 0, err)
}
