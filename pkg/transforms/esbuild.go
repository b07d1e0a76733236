package transforms

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/evanw/esbuild/pkg/api"
)

// Dialect is a source dialect esbuild can compile to plain JavaScript or
// plain CSS
type Dialect struct {
	Name    string
	Pattern string
	Loader  api.Loader
}

// Dialects are registered by the bundler in this order, so the last one is
// tried first
var Dialects = []Dialect{
	{Name: "css", Pattern: `\.css$`, Loader: api.LoaderCSS},
	{Name: "jsx", Pattern: `\.jsx$`, Loader: api.LoaderJSX},
	{Name: "typescript", Pattern: `\.ts$`, Loader: api.LoaderTS},
	{Name: "tsx", Pattern: `\.tsx$`, Loader: api.LoaderTSX},
}

// StyleEngines are the browsers style sheets are lowered for. CSS nesting
// is flattened for all of them.
var StyleEngines = []api.Engine{
	{Name: api.EngineChrome, Version: "100"},
	{Name: api.EngineEdge, Version: "100"},
	{Name: api.EngineFirefox, Version: "100"},
	{Name: api.EngineSafari, Version: "15"},
}

// Esbuild returns a transform compiling content with the given loader
func Esbuild(loader api.Loader) types.TransformFunc {
	logger := logging.GetLogger("transforms.esbuild")

	return func(ctx context.Context, name, content string, _ *types.Request) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		opts := api.TransformOptions{
			Loader:     loader,
			Sourcefile: name,
			LogLevel:   api.LogLevelSilent,
		}
		if loader == api.LoaderCSS {
			opts.Engines = StyleEngines
		}

		result := api.Transform(content, opts)

		if len(result.Errors) > 0 {
			return "", compileError(name, result.Errors)
		}

		for _, w := range result.Warnings {
			logger.Warn().
				Str("source", name).
				Str("warning", w.Text).
				Msg("esbuild warning")
		}

		return strings.TrimSuffix(string(result.Code), "\n"), nil
	}
}

func compileError(name string, msgs []api.Message) error {
	first := msgs[0]
	where := name
	if loc := first.Location; loc != nil {
		where = fmt.Sprintf("%s:%d:%d", name, loc.Line, loc.Column)
	}
	if len(msgs) > 1 {
		return fmt.Errorf("%s: %s (and %d more errors)", where, first.Text, len(msgs)-1)
	}
	return fmt.Errorf("%s: %s", where, first.Text)
}
