package resolvers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/types"
)

// File returns a resolver that reads source as a local path through fsys.
// Relative paths are joined with the request's BasePath when one is set.
func File(fsys types.FS) types.ResolveFunc {
	logger := logging.GetLogger("resolvers.file")

	return func(ctx context.Context, source string, req *types.Request) (string, error) {
		path := LocalPath(source, req)

		data, err := fsys.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}

		logger.Trace().
			Str("source", source).
			Str("path", path).
			Int("bytes", len(data)).
			Msg("Read local source")
		return string(data), nil
	}
}

// LocalPath returns the path the file resolver reads for source
func LocalPath(source string, req *types.Request) string {
	if req == nil || req.BasePath == "" || filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(req.BasePath, source)
}
