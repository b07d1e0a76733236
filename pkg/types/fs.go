package types

import "io/fs"

// FS is the filesystem the file resolver and the file sink work on.
// Paths are OS paths, not io/fs slash paths. The method set matches what
// the synthfs executor needs to run write operations against it.
type FS interface {
	// Open opens name for reading
	Open(name string) (fs.File, error)
	// Stat describes name
	Stat(name string) (fs.FileInfo, error)
	// ReadFile returns the whole content of a regular file
	ReadFile(name string) ([]byte, error)
	// WriteFile creates or truncates name
	WriteFile(name string, data []byte, perm fs.FileMode) error
	// MkdirAll creates path and any missing parents
	MkdirAll(path string, perm fs.FileMode) error

	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Symlink and Readlink fail on backends without link support
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
}
