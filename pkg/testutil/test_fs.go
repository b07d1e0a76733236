package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bundlr/pkg/filesystem"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFiles creates every path in files with its content, parents included.
func WriteFiles(t *testing.T, fsys types.FS, files map[string]string) {
	t.Helper()

	for path, content := range files {
		if dir := filepath.Dir(path); dir != "." {
			if err := fsys.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("failed to create %s: %v", dir, err)
			}
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}
