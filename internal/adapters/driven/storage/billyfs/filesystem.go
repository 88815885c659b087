package billyfs

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/custodia-labs/classwork/internal/core/ports/driven"
)

// Ensure FileSystem implements the interface.
var _ driven.FileSystem = (*FileSystem)(nil)

// FileSystem adapts a billy.Filesystem to driven.FileSystem.
type FileSystem struct {
	bfs billy.Filesystem
}

// New wraps an existing billy.Filesystem.
func New(bfs billy.Filesystem) *FileSystem {
	return &FileSystem{bfs: bfs}
}

// NewLocal creates a filesystem rooted at dir on the local disk.
// An empty dir means the current working directory.
func NewLocal(dir string) *FileSystem {
	if dir == "" {
		dir = "."
	}
	return New(osfs.New(dir))
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *FileSystem {
	return New(memfs.New())
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FileSystem) Unwrap() billy.Filesystem {
	return f.bfs
}

// Open opens name for reading.
func (f *FileSystem) Open(name string) (io.ReadCloser, error) {
	file, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Create creates or truncates name for writing.
func (f *FileSystem) Create(name string) (io.WriteCloser, error) {
	file, err := f.bfs.Create(normalize(name))
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Remove deletes name.
func (f *FileSystem) Remove(name string) error {
	return f.bfs.Remove(normalize(name))
}

// Exists reports whether name exists.
func (f *FileSystem) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Root returns the directory names are resolved against.
func (f *FileSystem) Root() string {
	return f.bfs.Root()
}

// normalize converts paths to use forward slashes consistently.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}
