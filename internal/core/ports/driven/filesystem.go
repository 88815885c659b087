package driven

import "io"

// FileSystem opens files by name relative to its root.
// Every call acquires a fresh handle; callers close what they open.
type FileSystem interface {
	// Open opens name for reading.
	// A missing file returns an error matching fs.ErrNotExist.
	Open(name string) (io.ReadCloser, error)

	// Create opens name for writing, creating it or truncating existing content.
	Create(name string) (io.WriteCloser, error)

	// Remove deletes name.
	// A missing file returns an error matching fs.ErrNotExist.
	Remove(name string) error

	// Exists reports whether name exists.
	Exists(name string) (bool, error)

	// Root returns the directory names are resolved against.
	Root() string
}
