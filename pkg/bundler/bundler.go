package bundler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/arthur-debert/bundlr/pkg/compactors"
	"github.com/arthur-debert/bundlr/pkg/errors"
	"github.com/arthur-debert/bundlr/pkg/filesystem"
	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/pipeline"
	"github.com/arthur-debert/bundlr/pkg/registry"
	"github.com/arthur-debert/bundlr/pkg/resolvers"
	"github.com/arthur-debert/bundlr/pkg/sink"
	"github.com/arthur-debert/bundlr/pkg/transforms"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/rs/zerolog"
)

// Patterns of the built-in rules
const (
	CatchAllPattern = "."
	HTTPPattern     = `^https?://`
)

// Bundler builds bundles. Its registries may be changed while runs are in
// flight; each item uses the rule that matches when it is processed.
type Bundler struct {
	resolvers  *registry.Registry[types.ResolveFunc]
	transforms *registry.Registry[types.TransformFunc]
	compactors map[types.Kind]types.Compactor
	sink       types.Sink
	engine     *pipeline.Engine

	fs      types.FS
	client  *http.Client
	retries int
	logger  zerolog.Logger
}

// New creates a Bundler with the built-in resolvers, transforms, compactors
// and a file sink
func New(opts ...Option) *Bundler {
	b := &Bundler{
		resolvers:  registry.New[types.ResolveFunc]("resolvers"),
		transforms: registry.New[types.TransformFunc]("transforms"),
		compactors: make(map[types.Kind]types.Compactor, len(types.Kinds)),
		engine:     pipeline.NewEngine(),
		logger:     logging.GetLogger("bundler"),
	}

	for _, kind := range types.Kinds {
		b.compactors[kind] = compactors.ForKind(kind)
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.fs == nil {
		b.fs = filesystem.NewOS()
	}
	if b.client == nil {
		b.client = &http.Client{}
	}
	if b.sink == nil {
		b.sink = sink.NewFileSink(b.fs)
	}

	registry.MustRegister(b.resolvers, CatchAllPattern, resolvers.File(b.fs))
	registry.MustRegister(b.resolvers, HTTPPattern, resolvers.HTTP(b.client, b.retries))

	registry.MustRegister(b.transforms, CatchAllPattern, transforms.Identity())
	for _, d := range transforms.Dialects {
		registry.MustRegister(b.transforms, d.Pattern, transforms.Esbuild(d.Loader))
	}

	return b
}

// RegisterResolver adds a resolver tried before every existing one
func (b *Bundler) RegisterResolver(pattern string, fn types.ResolveFunc) error {
	return b.resolvers.Register(pattern, fn)
}

// UnregisterResolver removes the first resolver registered under pattern
func (b *Bundler) UnregisterResolver(pattern string) bool {
	return b.resolvers.Unregister(pattern)
}

// RegisterTransform adds a transform tried before every existing one
func (b *Bundler) RegisterTransform(pattern string, fn types.TransformFunc) error {
	return b.transforms.Register(pattern, fn)
}

// UnregisterTransform removes the first transform registered under pattern
func (b *Bundler) UnregisterTransform(pattern string) bool {
	return b.transforms.Unregister(pattern)
}

// Resolvers returns the resolver patterns in match order
func (b *Bundler) Resolvers() []string {
	return b.resolvers.Patterns()
}

// Transforms returns the transform patterns in match order
func (b *Bundler) Transforms() []string {
	return b.transforms.Patterns()
}

// Script bundles req as JavaScript
func (b *Bundler) Script(ctx context.Context, req *types.Request) *Run {
	return b.Bundle(ctx, types.KindScript, req)
}

// Style bundles req as CSS
func (b *Bundler) Style(ctx context.Context, req *types.Request) *Run {
	return b.Bundle(ctx, types.KindStyle, req)
}

// Bundle starts a run of the given kind. The request is copied, so the
// caller may reuse it once Bundle returns.
func (b *Bundler) Bundle(ctx context.Context, kind types.Kind, req *types.Request) *Run {
	run := newRun(kind)

	compactor, ok := b.compactors[kind]
	if !ok {
		run.finish(types.Failed(errors.Newf(errors.ErrInvalidInput, "unknown bundle kind %s", kind).
			WithDetail("kind", kind.String())))
		return run
	}
	if req != nil {
		req = req.Clone()
	}

	go b.execute(ctx, run, req, pipeline.Stages{
		Passes:    []pipeline.Pass{b.resolvePass(req), b.transformPass(req)},
		Compactor: compactor,
		Sink:      b.sink,
	})
	return run
}

func (b *Bundler) execute(ctx context.Context, run *Run, req *types.Request, stages pipeline.Stages) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			run.finish(types.Failed(errors.Newf(errors.ErrInternal, "bundle run panicked: %v", r).
				WithDetail("kind", run.Kind().String())))
		}
	}()

	outcome := b.engine.Process(ctx, req, stages)
	if !outcome.OK() {
		outcome.Err = withKind(outcome.Err, run.Kind())
		b.logger.Debug().
			Err(outcome.Err).
			Str("kind", run.Kind().String()).
			Dur("duration", time.Since(start)).
			Msg("Bundle failed")
	} else {
		b.logger.Info().
			Str("kind", run.Kind().String()).
			Int("sources", len(req.Sources)).
			Int("bytes", len(outcome.Code)).
			Str("destination", outcome.Destination).
			Dur("duration", time.Since(start)).
			Msg("Bundle completed")
	}
	run.finish(outcome)
}

func (b *Bundler) resolvePass(req *types.Request) pipeline.Pass {
	return pipeline.Pass{
		Name: pipeline.PassResolve,
		Code: errors.ErrResolve,
		Step: func(ctx context.Context, _ int, source, _ string) (string, error) {
			rule, err := b.resolvers.Find(source)
			if err != nil {
				return "", err
			}
			b.logger.Trace().Str("source", source).Str("pattern", rule.Pattern).Msg("Resolving")
			return rule.Handler(ctx, source, req)
		},
	}
}

func (b *Bundler) transformPass(req *types.Request) pipeline.Pass {
	return pipeline.Pass{
		Name: pipeline.PassTransform,
		Code: errors.ErrTransform,
		Step: func(ctx context.Context, _ int, source, current string) (string, error) {
			rule, err := b.transforms.Find(source)
			if err != nil {
				return "", err
			}
			b.logger.Trace().Str("source", source).Str("pattern", rule.Pattern).Msg("Transforming")
			return rule.Handler(ctx, source, current, req)
		},
	}
}

func withKind(err error, kind types.Kind) error {
	if be, ok := err.(*errors.BundlrError); ok {
		return be.WithDetail("kind", kind.String())
	}
	return fmt.Errorf("%s bundle: %w", kind, err)
}
