package driving

// FileHandler reads and writes a single named file.
// Each call opens, transfers and closes; nothing is held between calls.
type FileHandler interface {
	// Read returns the full file contents.
	// Text handlers return a string, binary handlers a []byte.
	Read() (any, error)

	// Write replaces the file contents with content.
	// Content of the wrong kind fails with domain.ErrTypeMismatch
	// before the file is touched.
	Write(content any) error

	// FileInfo names the handler variant and its file.
	FileInfo() string

	// Filename returns the target filename.
	Filename() string
}
