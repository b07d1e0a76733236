package pipeline

import (
	"context"

	"github.com/arthur-debert/bundlr/pkg/errors"
	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/rs/zerolog"
)

// Pass names used by the bundler
const (
	PassResolve   = "resolve"
	PassTransform = "transform"
)

// Step processes item index of a pass. current is the item's content from
// the previous pass, empty in the first one.
type Step func(ctx context.Context, index int, source, current string) (string, error)

// Pass is one sequential sweep over every item
type Pass struct {
	Name string
	Code errors.ErrorCode
	Step Step
}

// Engine runs passes over bundles. It holds no per-run state and can be
// shared by concurrent runs.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine creates an Engine
func NewEngine() *Engine {
	return &Engine{
		logger: logging.GetLogger("pipeline.engine"),
	}
}

// Run drives passes over bundle in order. A pass starts only after the
// previous one succeeded for every item.
func (e *Engine) Run(ctx context.Context, bundle *Bundle, passes ...Pass) error {
	for _, pass := range passes {
		if err := e.runPass(ctx, bundle, pass); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) runPass(ctx context.Context, bundle *Bundle, pass Pass) error {
	done := logging.LogOperationStart(e.logger, pass.Name)
	defer done()

	for i := 0; i < bundle.Len(); i++ {
		source := bundle.Source(i)

		if err := ctx.Err(); err != nil {
			return itemError(errors.Wrapf(err, errors.ErrCanceled, "%s pass canceled before %s", pass.Name, source), pass, i, source)
		}

		out, err := pass.Step(ctx, i, source, bundle.Content(i))
		if err != nil {
			e.logger.Debug().
				Err(err).
				Str("pass", pass.Name).
				Int("index", i).
				Str("source", source).
				Msg("Step failed, aborting run")
			return itemError(errors.Wrapf(err, pass.Code, "failed to %s %s", pass.Name, source), pass, i, source)
		}

		bundle.Set(i, out)

		e.logger.Trace().
			Str("pass", pass.Name).
			Int("index", i).
			Str("source", source).
			Int("bytes", len(out)).
			Msg("Step completed")
	}
	return nil
}

func itemError(err *errors.BundlrError, pass Pass, index int, source string) error {
	return err.WithDetails(map[string]interface{}{
		"pass":   pass.Name,
		"index":  index,
		"source": source,
	})
}
