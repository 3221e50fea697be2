package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "named", KindNamed.String())
	assert.Equal(t, "string_literal", KindStringLiteral.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKindNamesRoundTrip(t *testing.T) {
	for k := KindNamed; k <= KindStringLiteral; k++ {
		got, ok := kindByName[k.String()]
		assert.True(t, ok, "kind %s missing from name index", k)
		assert.Equal(t, k, got)
	}
}

func TestArgumentIs(t *testing.T) {
	arg := &Argument{Value: &NamedType{Name: "int"}}
	assert.True(t, arg.Is(KindNamed))
	assert.False(t, arg.Is(KindUnion))

	empty := &Argument{}
	assert.False(t, empty.Is(KindNamed))
}

func TestOffsetsAreStable(t *testing.T) {
	n := &GenericType{
		Off:   3,
		Inner: &NamedType{Off: 3, Name: "C"},
		Args:  []TypeStmt{&NamedType{Off: 5, Name: "int"}},
	}
	assert.Equal(t, 3, n.Offset())
	assert.Equal(t, 5, n.Args[0].Offset())
}
