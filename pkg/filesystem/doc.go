// Package filesystem provides filesystem implementations for bundlr.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the CLI and an afero-backed one used by
// tests and by callers that bundle from memory.
package filesystem
