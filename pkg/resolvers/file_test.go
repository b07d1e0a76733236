package resolvers

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bundlr/pkg/filesystem"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile("/src/a.js", []byte("var a = 1;"), 0644))
	require.NoError(t, fsys.WriteFile("/abs/b.js", []byte("var b = 2;"), 0644))

	resolve := File(fsys)
	ctx := context.Background()

	t.Run("joined with base path", func(t *testing.T) {
		req := types.NewRequest("a.js")
		req.BasePath = "/src"

		got, err := resolve(ctx, "a.js", req)
		require.NoError(t, err)
		assert.Equal(t, "var a = 1;", got)
	})

	t.Run("absolute path ignores base path", func(t *testing.T) {
		req := types.NewRequest()
		req.BasePath = "/src"

		got, err := resolve(ctx, "/abs/b.js", req)
		require.NoError(t, err)
		assert.Equal(t, "var b = 2;", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := resolve(ctx, "/src/missing.js", types.NewRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "missing.js")
	})
}

func TestLocalPath(t *testing.T) {
	req := &types.Request{BasePath: "assets"}

	assert.Equal(t, filepath.Join("assets", "a.css"), LocalPath("a.css", req))
	assert.Equal(t, "a.css", LocalPath("a.css", &types.Request{}))
	assert.Equal(t, "a.css", LocalPath("a.css", nil))
}
