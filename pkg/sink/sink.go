// Package sink provides destinations for finished bundles.
package sink

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
)

// FileSink writes bundles verbatim to files through a types.FS. Each
// persist is one synthfs run: the parent directory, then the file.
type FileSink struct {
	fs types.FS
}

// NewFileSink creates a FileSink writing through fsys
func NewFileSink(fsys types.FS) *FileSink {
	return &FileSink{fs: fsys}
}

// Persist writes code to destination, creating parent directories
func (s *FileSink) Persist(ctx context.Context, destination, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sfs := synthfs.New()
	ops := make([]synthfs.Operation, 0, 2)
	if dir := filepath.Dir(destination); dir != "." && dir != string(filepath.Separator) {
		ops = append(ops, sfs.CreateDirWithID("mkdir_"+destination, dir, 0755))
	}
	ops = append(ops, sfs.CreateFileWithID("write_"+destination, destination, []byte(code), 0644))

	result, err := synthfs.Run(ctx, s.fs, ops...)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", destination, err)
	}

	logger := logging.GetLogger("sink.file")
	logger.Debug().
		Str("destination", destination).
		Int("bytes", len(code)).
		Int("operations", len(result.GetOperations())).
		Msg("Bundle written")
	return nil
}

// MemorySink keeps persisted bundles in memory
type MemorySink struct {
	mu    sync.Mutex
	files map[string]string
	order []string
}

// NewMemorySink creates an empty MemorySink
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string]string)}
}

// Persist records code under destination
func (s *MemorySink) Persist(_ context.Context, destination, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[destination] = code
	s.order = append(s.order, destination)
	return nil
}

// Get returns what was last persisted to destination
func (s *MemorySink) Get(destination string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.files[destination]
	return code, ok
}

// Writes returns destinations in the order they were persisted
func (s *MemorySink) Writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.order...)
}
