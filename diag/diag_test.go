package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnexpectedToken(t *testing.T) {
	d := NewUnexpectedToken("int extra", "extra", 4)
	assert.Equal(t, UnexpectedToken, d.Kind)
	assert.Equal(t, 4, d.Offset)
	assert.Equal(t, "int extra", d.Source)
	assert.Equal(t, `unexpected token "extra"`, d.Message())
	assert.Equal(t, `unexpected token "extra" at offset 4`, d.Error())
}

func TestOffsetsAreClamped(t *testing.T) {
	assert.Equal(t, 2, NewUnexpectedToken("ab", "x", 99).Offset)
	assert.Equal(t, 0, NewSemantic("ab", -5, CodeIntRange, "bad").Offset)
	assert.Equal(t, 0, NewUnrecognizedToken("", 3).Offset)
}

func TestUnrecognizedTokenTruncatesText(t *testing.T) {
	d := NewUnrecognizedToken("$averylongthing", 0)
	assert.Equal(t, UnrecognizedToken, d.Kind)
	assert.Contains(t, d.Message(), `"$averylong"`)
}

func TestSemanticCarriesCode(t *testing.T) {
	d := NewSemantic("Collection<>", 10, CodeEmptyTypeArgs,
		"generic type %s requires at least one type argument", "Collection")
	assert.Equal(t, Semantic, d.Kind)
	assert.Equal(t, CodeEmptyTypeArgs, d.Code)
	assert.Equal(t, 10, d.Offset)
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("engine exploded")
	d := NewInternal("int", 0, cause)
	assert.Equal(t, Internal, d.Kind)
	require.ErrorIs(t, d, cause)
	assert.Contains(t, d.Message(), "engine exploded")
}

func TestOnlyInternalUnwraps(t *testing.T) {
	assert.Nil(t, NewUnexpectedToken("x", "x", 0).Unwrap())
	assert.Nil(t, NewUnrecognizedSyntax("x", 0).Unwrap())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unexpected token", UnexpectedToken.String())
	assert.Equal(t, "internal error", Internal.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestRenderCaret(t *testing.T) {
	d := NewUnexpectedToken("array{a: int}", "{", 5)
	want := "unexpected token \"{\"\n" +
		"  array{a: int}\n" +
		"       ^"
	assert.Equal(t, want, Render(d))
}

func TestRenderPicksOffendingLine(t *testing.T) {
	d := NewUnexpectedToken("int|\nfoo bar", "bar", 9)
	want := "unexpected token \"bar\"\n" +
		"  foo bar\n" +
		"      ^"
	assert.Equal(t, want, Render(d))
}

func TestRenderAtEndOfInput(t *testing.T) {
	d := NewUnexpectedToken("int|", "<eof>", 4)
	want := "unexpected token \"<eof>\"\n" +
		"  int|\n" +
		"      ^"
	assert.Equal(t, want, Render(d))
}
