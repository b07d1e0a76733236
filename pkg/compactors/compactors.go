// Package compactors implements the whole-bundle compaction stage on top of
// tdewolff/minify: one compactor per bundle kind.
package compactors

import (
	"context"

	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

const (
	cssMediaType = "text/css"
	jsMediaType  = "application/javascript"
)

// Style compacts style sheets. Request.Strict drops CSS2 compatibility to
// allow the shorter CSS3 forms.
func Style() types.Compactor {
	return types.CompactorFunc(func(ctx context.Context, code string, req *types.Request) (string, error) {
		strict := req != nil && req.Strict

		m := minify.New()
		m.Add(cssMediaType, &css.Minifier{KeepCSS2: !strict})
		return run(ctx, m, cssMediaType, code)
	})
}

// Script compacts JavaScript. Request.Mangle allows renaming local
// identifiers; without it variable names are kept.
func Script() types.Compactor {
	return types.CompactorFunc(func(ctx context.Context, code string, req *types.Request) (string, error) {
		mangle := req == nil || req.Mangle

		m := minify.New()
		m.Add(jsMediaType, &js.Minifier{KeepVarNames: !mangle})
		return run(ctx, m, jsMediaType, code)
	})
}

// ForKind returns the default compactor for kind
func ForKind(kind types.Kind) types.Compactor {
	if kind == types.KindStyle {
		return Style()
	}
	return Script()
}

func run(ctx context.Context, m *minify.M, mediaType, code string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.String(mediaType, code)
}
