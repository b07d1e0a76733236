package transforms

import (
	"context"

	"github.com/arthur-debert/bundlr/pkg/types"
)

// Identity returns content unchanged
func Identity() types.TransformFunc {
	return func(_ context.Context, _, content string, _ *types.Request) (string, error) {
		return content, nil
	}
}
