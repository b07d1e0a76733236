package bundler

import (
	"net/http"

	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/rs/zerolog"
)

// Option configures a Bundler
type Option func(*Bundler)

// WithFS sets the filesystem used by the built-in file resolver and the
// default file sink
func WithFS(fsys types.FS) Option {
	return func(b *Bundler) {
		b.fs = fsys
	}
}

// WithHTTPClient sets the client used by the built-in HTTP resolver
func WithHTTPClient(client *http.Client) Option {
	return func(b *Bundler) {
		b.client = client
	}
}

// WithRetries makes the built-in HTTP resolver retry failed fetches up to n
// times with exponential backoff
func WithRetries(n int) Option {
	return func(b *Bundler) {
		b.retries = n
	}
}

// WithSink replaces the file sink
func WithSink(s types.Sink) Option {
	return func(b *Bundler) {
		b.sink = s
	}
}

// WithCompactor replaces the compactor for kind
func WithCompactor(kind types.Kind, c types.Compactor) Option {
	return func(b *Bundler) {
		b.compactors[kind] = c
	}
}

// WithLogger sets the logger for run lifecycle events
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bundler) {
		b.logger = logger
	}
}
