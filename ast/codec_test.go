package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typelang/typeparse/ast"
	"github.com/typelang/typeparse/parser"
)

var roundTripSources = []string{
	"int",
	"int|string|null",
	"Countable&Traversable",
	"?int[]",
	"Collection<int, string>",
	"array{id: int, name?: string, ...}",
	"array{'key': int, 0: string}",
	"callable(int, string...): bool",
	"T is not null ? int : string",
	"123|-5|0xFF|'abc'",
	"array{items: Collection<int>, cb?: callable(int...): ?string}|null",
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := parser.New()
	for _, src := range roundTripSources {
		t.Run(src, func(t *testing.T) {
			stmt, err := p.Parse(src)
			require.NoError(t, err)
			require.NotNil(t, stmt)

			encoded := ast.Encode(stmt)
			decoded, err := ast.DecodeStmt(encoded)
			require.NoError(t, err)

			// the tree must survive the round trip structurally
			// identical, offsets included
			assert.Empty(t, cmp.Diff(encoded, ast.Encode(decoded)))
			assert.Equal(t, stmt.Kind(), decoded.Kind())
			assert.Equal(t, stmt.Offset(), decoded.Offset())
		})
	}
}

func TestEncodeDecodeSurvivesJSON(t *testing.T) {
	p := parser.New()
	stmt, err := p.Parse("array{id: int, tags: list<string>}")
	require.NoError(t, err)

	data, err := json.Marshal(ast.Encode(stmt))
	require.NoError(t, err)
	var thawed map[string]any
	require.NoError(t, json.Unmarshal(data, &thawed))

	decoded, err := ast.DecodeStmt(thawed)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(ast.Encode(stmt), ast.Encode(decoded)))
}

func TestDecodeMissingRequiredField(t *testing.T) {
	p := parser.New()
	stmt, err := p.Parse("int|string")
	require.NoError(t, err)

	cases := []struct {
		name  string
		field string
	}{
		{"missing-offset", "offset"},
		{"missing-kind", "kind"},
		{"missing-members", "members"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := ast.Encode(stmt)
			delete(encoded, tc.field)
			_, err := ast.Decode(encoded)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestDecodeRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
	}{
		{"unknown-kind", map[string]any{"kind": "mystery", "offset": 0}},
		{"negative-offset", map[string]any{"kind": "named", "offset": -1, "name": "int"}},
		{"ill-typed-name", map[string]any{"kind": "named", "offset": 0, "name": 42}},
		{"fractional-offset", map[string]any{"kind": "named", "offset": 1.5, "name": "int"}},
		{"empty-generic-args", map[string]any{
			"kind": "generic", "offset": 0,
			"inner": map[string]any{"kind": "named", "offset": 0, "name": "C"},
			"args":  []any{},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ast.Decode(tc.in)
			assert.Error(t, err)
		})
	}
}

func TestDecodeStmtRejectsNonStatement(t *testing.T) {
	p := parser.New()
	stmt, err := p.Parse("callable(int): bool")
	require.NoError(t, err)
	callable := stmt.(*ast.CallableType)
	require.Len(t, callable.Params, 1)

	// an argument node decodes fine but is not a standalone type
	encoded := ast.Encode(callable.Params[0])
	node, err := ast.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, ast.KindArgument, node.Kind())

	_, err = ast.DecodeStmt(encoded)
	assert.Error(t, err)
}
