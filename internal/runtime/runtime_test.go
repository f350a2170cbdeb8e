package runtime

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/jsxrewrite/internal/topscope"
)

func topOf(names ...string) topscope.Set {
	s := topscope.Set{}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func TestScopeSource_ReturnsNames(t *testing.T) {
	rt := NewRuntime("")
	got, err := rt.ScopeSource(`["Icon", "Byline"]`).Names(context.Background(), "docs/a.jsx", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Icon", "Byline"}, got)
}

func TestScopeSource_SeesGlobals(t *testing.T) {
	rt := NewRuntime("")
	script := `
names := []
if file_path == "docs/blog.jsx" {
	names = ["Byline"]
}
assert(len(top_scope) == 2, "expected two top-level names")
assert(top_scope[0] == "Chart", 'expected Chart, got {top_scope[0]}')
names
`
	ctx := context.Background()
	top := topOf("data", "Chart")

	got, err := rt.ScopeSource(script).Names(ctx, "docs/blog.jsx", top)
	require.NoError(t, err)
	assert.Equal(t, []string{"Byline"}, got)

	got, err = rt.ScopeSource(script).Names(ctx, "docs/other.jsx", top)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScopeSource_HostFunctions(t *testing.T) {
	rt := NewRuntime("")
	script := `
assert(is_identifier("Foo"), "Foo is an identifier")
assert(!is_identifier("my-element"), "my-element is not an identifier")
assert(is_component("Foo"), "Foo is a component")
assert(!is_component("h1"), "h1 is a tag")
assert(!is_component("my-element"), "my-element is a tag")
[]
`
	_, err := rt.ScopeSource(script).Names(context.Background(), "a.jsx", nil)
	require.NoError(t, err)
}

func TestScopeSource_WrongResultType(t *testing.T) {
	rt := NewRuntime("")
	ctx := context.Background()

	_, err := rt.ScopeSource(`"Icon"`).Names(ctx, "a.jsx", nil)
	assert.ErrorIs(t, err, ErrResultType)

	_, err = rt.ScopeSource(`["Icon", 1]`).Names(ctx, "a.jsx", nil)
	assert.ErrorIs(t, err, ErrResultType)
}

func TestScopeSource_ScriptError(t *testing.T) {
	rt := NewRuntime("")
	_, err := rt.ScopeSource(`error("boom")`).Names(context.Background(), "a.jsx", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime: script <inline>")
}

func TestExtend_MergesWithoutMutating(t *testing.T) {
	rt := NewRuntime("")
	top := topOf("data")
	out, err := rt.ScopeSource(`["Icon"]`).Extend(context.Background(), "a.jsx", top)
	require.NoError(t, err)
	assert.True(t, out.Has("data"))
	assert.True(t, out.Has("Icon"))
	assert.False(t, top.Has("Icon"))
}

func TestLoadScopeScript_FromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scope.risor"), []byte(`["Icon"]`), 0644))

	rt := NewRuntime(dir)
	script, err := rt.LoadScopeScript("scope.risor")
	require.NoError(t, err)
	got, err := script.Names(context.Background(), "a.jsx", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Icon"}, got)
}

func TestLoadScopeScript_MissingFile(t *testing.T) {
	rt := NewRuntime(t.TempDir())
	_, err := rt.LoadScopeScript("nope.risor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime: loading script")
}

func TestLoadScript_FromFSFS(t *testing.T) {
	fsys := fstest.MapFS{
		"scripts/scope.risor": &fstest.MapFile{Data: []byte(`["Icon"]`)},
	}
	rt := NewRuntime("", WithRuntimeFS(fsys))
	src, err := rt.LoadScript("/scripts/scope.risor")
	require.NoError(t, err)
	assert.Equal(t, `["Icon"]`, src)
}

func TestLoadScript_FromFSFS_NotFound(t *testing.T) {
	rt := NewRuntime("", WithRuntimeFS(fstest.MapFS{}))
	_, err := rt.LoadScript("missing.risor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from fs")
}
