package dot_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmoraes/friendnet/builder"
	"github.com/nmoraes/friendnet/core"
	"github.com/nmoraes/friendnet/dot"
)

const sampleDot = `graph friends {
  v0 [label="Alice"];
  v1 [label="Bob"];
  v2 [label="Carol"];
  v3 [label="Dave"];
  v4 [label="Eve"];
  v5 [label="Frank"];
  v0 -- v1;
  v0 -- v2;
  v1 -- v2;
  v1 -- v3;
  v2 -- v4;
  v3 -- v5;
  v4 -- v5;
}
`

func TestMarshal_NilGraph(t *testing.T) {
	_, err := dot.Marshal(nil)
	assert.True(t, errors.Is(err, dot.ErrGraphNil))
}

func TestMarshal_Empty(t *testing.T) {
	doc, err := dot.Marshal(core.New())
	require.NoError(t, err)
	assert.Equal(t, "graph friends {\n}\n", string(doc))
}

func TestMarshal_SampleGraph(t *testing.T) {
	g := core.New()
	require.NoError(t, builder.Sample(g))

	doc, err := dot.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, sampleDot, string(doc))

	// Exactly 6 node declarations and 7 undirected edges, u < v, no dups.
	assert.Equal(t, 6, strings.Count(string(doc), "[label="))
	assert.Equal(t, 7, strings.Count(string(doc), " -- "))
}

func TestMarshal_Deterministic(t *testing.T) {
	g := core.New()
	require.NoError(t, builder.Sample(g))

	first, err := dot.Marshal(g)
	require.NoError(t, err)
	second, err := dot.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated marshals must be byte-identical")

	// A clone of the same state regenerates the same document.
	cloned, err := dot.Marshal(g.Clone())
	require.NoError(t, err)
	assert.Equal(t, first, cloned)
}

func TestWrite(t *testing.T) {
	g := core.New()
	require.NoError(t, builder.Sample(g))

	var buf bytes.Buffer
	require.NoError(t, dot.Write(g, &buf))
	assert.Equal(t, sampleDot, buf.String())
}

func TestWriteFile(t *testing.T) {
	g := core.New()
	require.NoError(t, builder.Sample(g))

	path := filepath.Join(t.TempDir(), "friends.dot")
	require.NoError(t, dot.WriteFile(g, path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleDot, string(got))
}

func TestWriteFile_BadPath(t *testing.T) {
	g := core.New()
	err := dot.WriteFile(g, filepath.Join(t.TempDir(), "missing", "friends.dot"))
	assert.Error(t, err)
}
