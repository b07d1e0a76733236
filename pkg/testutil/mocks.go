package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/bundlr/pkg/types"
)

// Recorder collects handler invocations in the order they happen.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

// Record appends an entry.
func (r *Recorder) Record(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// Calls returns a copy of the recorded entries.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// StaticResolver returns a resolver serving contents by identifier. Unknown
// identifiers fail with "not found". Each call is recorded as
// "resolve <source>" when rec is not nil.
func StaticResolver(contents map[string]string, rec *Recorder) types.ResolveFunc {
	return func(_ context.Context, source string, _ *types.Request) (string, error) {
		if rec != nil {
			rec.Record("resolve %s", source)
		}
		content, ok := contents[source]
		if !ok {
			return "", errors.New("not found")
		}
		return content, nil
	}
}

// TaggingTransform returns a transform that prefixes content with tag.
func TaggingTransform(tag string, rec *Recorder) types.TransformFunc {
	return func(_ context.Context, name, content string, _ *types.Request) (string, error) {
		if rec != nil {
			rec.Record("transform %s", name)
		}
		return tag + content, nil
	}
}

// MockCompactor is a mock implementation of types.Compactor. Without a
// CompactFunc it strips all whitespace.
type MockCompactor struct {
	CompactFunc func(ctx context.Context, code string, req *types.Request) (string, error)

	mu    sync.Mutex
	calls int
}

// Compact runs the mock's compact function.
func (m *MockCompactor) Compact(ctx context.Context, code string, req *types.Request) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.CompactFunc != nil {
		return m.CompactFunc(ctx, code, req)
	}
	return strings.Join(strings.Fields(code), ""), nil
}

// Calls returns how many times Compact was invoked.
func (m *MockCompactor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockSink is a mock implementation of types.Sink. Without a PersistFunc
// every write succeeds.
type MockSink struct {
	PersistFunc func(ctx context.Context, destination, code string) error

	mu     sync.Mutex
	writes map[string]string
	calls  int
}

// Persist runs the mock's persist function and records successful writes.
func (m *MockSink) Persist(ctx context.Context, destination, code string) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.PersistFunc != nil {
		if err := m.PersistFunc(ctx, destination, code); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writes == nil {
		m.writes = make(map[string]string)
	}
	m.writes[destination] = code
	return nil
}

// Written returns what was persisted to destination.
func (m *MockSink) Written(destination string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	code, ok := m.writes[destination]
	return code, ok
}

// Calls returns how many times Persist was invoked.
func (m *MockSink) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// FailingSink returns a sink whose every write fails with msg.
func FailingSink(msg string) *MockSink {
	return &MockSink{
		PersistFunc: func(context.Context, string, string) error {
			return errors.New(msg)
		},
	}
}
