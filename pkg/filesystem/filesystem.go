package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS adapts an afero.Fs to types.FS
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS wraps fsys
func NewAferoFS(fsys afero.Fs) types.FS {
	return &aferoFS{fs: fsys}
}

// NewOS returns the host filesystem
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

// ReadFile refuses directories on every backend; the in-memory one would
// otherwise return an empty read.
func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Open(name string) (fs.File, error) {
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if linker, ok := a.fs.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}
	return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", &fs.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}
