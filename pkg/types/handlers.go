package types

import "context"

// ResolveFunc turns a source identifier into raw text
type ResolveFunc func(ctx context.Context, source string, req *Request) (string, error)

// TransformFunc turns raw text in some dialect into text in the bundle's
// target language. name is the source identifier the text came from.
type TransformFunc func(ctx context.Context, name, content string, req *Request) (string, error)

// Compactor shrinks a whole assembled bundle
type Compactor interface {
	Compact(ctx context.Context, code string, req *Request) (string, error)
}

// CompactorFunc adapts a function to the Compactor interface
type CompactorFunc func(ctx context.Context, code string, req *Request) (string, error)

// Compact calls f
func (f CompactorFunc) Compact(ctx context.Context, code string, req *Request) (string, error) {
	return f(ctx, code, req)
}

// Sink persists final bundle text to a named destination
type Sink interface {
	Persist(ctx context.Context, destination, code string) error
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(ctx context.Context, destination, code string) error

// Persist calls f
func (f SinkFunc) Persist(ctx context.Context, destination, code string) error {
	return f(ctx, destination, code)
}
