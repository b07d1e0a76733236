package pipeline

import (
	"context"

	"github.com/arthur-debert/bundlr/pkg/errors"
	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/types"
)

// Stages are everything a run needs besides the request
type Stages struct {
	Passes    []Pass
	Compactor types.Compactor
	Sink      types.Sink
}

// Validate rejects requests a run cannot start with
func Validate(req *types.Request) error {
	if req == nil {
		return errors.New(errors.ErrInvalidInput, "request is nil")
	}
	if len(req.Sources) == 0 {
		return errors.New(errors.ErrInvalidInput, "no sources given")
	}
	for i, s := range req.Sources {
		if s == "" {
			return errors.Newf(errors.ErrInvalidInput, "source %d is empty", i).WithDetail("index", i)
		}
	}
	return nil
}

// Process runs the whole pipeline for req and returns its single outcome
func (e *Engine) Process(ctx context.Context, req *types.Request, stages Stages) types.Outcome {
	if err := Validate(req); err != nil {
		return types.Failed(err)
	}

	bundle := NewBundle(req.Sources)
	if err := e.Run(ctx, bundle, stages.Passes...); err != nil {
		return types.Failed(err)
	}

	code, err := Compact(ctx, stages.Compactor, Assemble(bundle), req)
	if err != nil {
		return types.Failed(err)
	}

	return Output(ctx, stages.Sink, code, req.Destination)
}

// Compact runs the compactor when req.Compress is set. Otherwise code is
// returned untouched.
func Compact(ctx context.Context, c types.Compactor, code string, req *types.Request) (string, error) {
	if !req.Compress {
		return code, nil
	}
	if c == nil {
		return "", errors.New(errors.ErrCompact, "compaction enabled but no compactor configured")
	}

	out, err := c.Compact(ctx, code, req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCompact, "failed to compact bundle")
	}

	logger := logging.GetLogger("pipeline.compact")
	logger.Debug().
		Int("before", len(code)).
		Int("after", len(out)).
		Msg("Bundle compacted")
	return out, nil
}

// Output persists code when destination is set and builds the outcome.
// The code is only reported after persistence succeeded.
func Output(ctx context.Context, s types.Sink, code, destination string) types.Outcome {
	if destination == "" {
		return types.Completed(code, "")
	}
	if s == nil {
		return types.Failed(errors.New(errors.ErrPersist, "destination given but no sink configured").
			WithDetail("destination", destination))
	}

	if err := s.Persist(ctx, destination, code); err != nil {
		return types.Failed(errors.Wrapf(err, errors.ErrPersist, "failed to write %s", destination).
			WithDetail("destination", destination))
	}
	return types.Completed(code, destination)
}
