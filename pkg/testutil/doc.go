// Package testutil provides utilities for testing bundlr components.
//
// Key components:
//   - NewTestFS: in-memory filesystem behind types.FS
//   - MockCompactor, MockSink: capability mocks that record their calls
//   - StaticResolver, Recorder: handler stubs for registry and pipeline tests
//
// All test data should be defined inline, not in external files, and each
// test should build its own fixtures.
package testutil
