package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/typelang/typeparse/ast"
	"github.com/typelang/typeparse/diag"
)

type corpusCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Root is the expected root node kind for accepted sources.
	Root string `yaml:"root"`
	// Fail is the expected diagnostic kind for rejected sources.
	Fail   string `yaml:"fail"`
	Offset *int   `yaml:"offset"`
}

type corpusFile struct {
	Cases []corpusCase `yaml:"cases"`
}

func loadCorpus(t *testing.T) []corpusCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "corpus.yaml"))
	require.NoError(t, err)
	var file corpusFile
	require.NoError(t, yaml.Unmarshal(data, &file))
	require.NotEmpty(t, file.Cases)
	return file.Cases
}

func TestCorpus(t *testing.T) {
	p := New()
	for _, tc := range loadCorpus(t) {
		t.Run(tc.Name, func(t *testing.T) {
			stmt, err := p.Parse(tc.Source)

			if tc.Fail != "" {
				assert.Nil(t, stmt)
				d := requireDiag(t, err)
				assert.Equal(t, tc.Fail, d.Kind.String())
				assert.GreaterOrEqual(t, d.Offset, 0)
				assert.LessOrEqual(t, d.Offset, len(tc.Source))
				if tc.Offset != nil {
					assert.Equal(t, *tc.Offset, d.Offset)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, stmt)
			assert.Equal(t, tc.Root, stmt.Kind().String())

			// every accepted tree must survive a serialize/deserialize
			// round trip unchanged
			encoded := ast.Encode(stmt)
			decoded, err := ast.DecodeStmt(encoded)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(encoded, ast.Encode(decoded)))
		})
	}
}

// The corpus is also the easiest place to sanity-check the offset
// bound property across a varied set of diagnostics.
func TestCorpusDiagnosticKindsAreClosed(t *testing.T) {
	known := map[string]bool{
		diag.UnexpectedToken.String():    true,
		diag.UnrecognizedToken.String():  true,
		diag.Semantic.String():           true,
		diag.UnrecognizedSyntax.String(): true,
		diag.Internal.String():           true,
	}
	for _, tc := range loadCorpus(t) {
		if tc.Fail != "" {
			assert.True(t, known[tc.Fail], "case %s names unknown kind %q", tc.Name, tc.Fail)
		}
	}
}
