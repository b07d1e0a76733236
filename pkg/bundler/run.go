package bundler

import (
	"sync"

	"github.com/arthur-debert/bundlr/pkg/types"
)

// Run is a bundle in progress. It resolves exactly once.
type Run struct {
	kind    types.Kind
	once    sync.Once
	done    chan struct{}
	outcome types.Outcome
}

func newRun(kind types.Kind) *Run {
	return &Run{
		kind: kind,
		done: make(chan struct{}),
	}
}

// Kind returns the kind of bundle being built
func (r *Run) Kind() types.Kind {
	return r.kind
}

// Done is closed once the outcome is available
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run finishes and returns its outcome
func (r *Run) Wait() types.Outcome {
	<-r.done
	return r.outcome
}

// Outcome returns the outcome without blocking. The second value is false
// while the run is still in progress.
func (r *Run) Outcome() (types.Outcome, bool) {
	select {
	case <-r.done:
		return r.outcome, true
	default:
		return types.Outcome{}, false
	}
}

// finish records o unless an outcome was already recorded
func (r *Run) finish(o types.Outcome) bool {
	first := false
	r.once.Do(func() {
		r.outcome = o
		first = true
		close(r.done)
	})
	return first
}
