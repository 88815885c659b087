package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driven"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// Ensure the handlers implement the interface.
var (
	_ driving.FileHandler = (*TextFileHandler)(nil)
	_ driving.FileHandler = (*BinaryFileHandler)(nil)
)

var errInvalidUTF8 = errors.New("invalid UTF-8 content")

// fileHandler holds the state shared by every handler variant.
type fileHandler struct {
	fsys     driven.FileSystem
	filename string
	variant  string
	kind     string
}

func newFileHandler(fsys driven.FileSystem, filename, variant, kind string) (fileHandler, error) {
	if strings.TrimSpace(filename) == "" {
		return fileHandler{}, domain.NewError(domain.ErrInvalidInput, "Filename cannot be empty")
	}
	if fsys == nil {
		return fileHandler{}, domain.NewError(domain.ErrInvalidInput, "filesystem is required")
	}
	return fileHandler{fsys: fsys, filename: filename, variant: variant, kind: kind}, nil
}

// Filename returns the target filename.
func (h *fileHandler) Filename() string {
	return h.filename
}

// FileInfo names the handler variant and its file.
func (h *fileHandler) FileInfo() string {
	return fmt.Sprintf("%s handling file: %s", h.variant, h.filename)
}

// readAll opens, reads and closes the file in a single call.
func (h *fileHandler) readAll() (data []byte, err error) {
	r, err := h.fsys.Open(h.filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			label := strings.ToUpper(h.kind[:1]) + h.kind[1:]
			return nil, &domain.Error{
				Kind: domain.ErrNotFound,
				Msg:  fmt.Sprintf("%s file %s not found", label, h.filename),
				Path: h.filename,
			}
		}
		return nil, h.readError(err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			data, err = nil, h.readError(cerr)
		}
	}()

	data, err = io.ReadAll(r)
	if err != nil {
		return nil, h.readError(err)
	}
	return data, nil
}

// writeAll creates or truncates the file and writes data in one call.
func (h *fileHandler) writeAll(data []byte) (err error) {
	w, err := h.fsys.Create(h.filename)
	if err != nil {
		return h.writeError(err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = h.writeError(cerr)
		}
	}()

	if _, err := w.Write(data); err != nil {
		return h.writeError(err)
	}
	return nil
}

func (h *fileHandler) readError(cause error) error {
	msg := fmt.Sprintf("Error reading %s file %s", h.kind, h.filename)
	return domain.WrapError(domain.ErrIO, msg, h.filename, cause)
}

func (h *fileHandler) writeError(cause error) error {
	msg := fmt.Sprintf("Error writing to %s file %s", h.kind, h.filename)
	return domain.WrapError(domain.ErrIO, msg, h.filename, cause)
}

// TextFileHandler reads and writes a UTF-8 text file.
// Content is transferred verbatim; line endings are not translated.
type TextFileHandler struct {
	fileHandler
}

// NewTextFileHandler creates a handler for the text file name on fsys.
func NewTextFileHandler(fsys driven.FileSystem, name string) (*TextFileHandler, error) {
	base, err := newFileHandler(fsys, name, "TextFileHandler", "text")
	if err != nil {
		return nil, err
	}
	return &TextFileHandler{fileHandler: base}, nil
}

// Read returns the file contents as a string.
func (h *TextFileHandler) Read() (any, error) {
	text, err := h.ReadText()
	if err != nil {
		return nil, err
	}
	return text, nil
}

// ReadText returns the file contents as a string.
func (h *TextFileHandler) ReadText() (string, error) {
	data, err := h.readAll()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", h.readError(errInvalidUTF8)
	}
	return string(data), nil
}

// Write replaces the file contents. Content must be a string.
func (h *TextFileHandler) Write(content any) error {
	text, ok := content.(string)
	if !ok {
		return domain.NewError(domain.ErrTypeMismatch, "Content must be a string for TextFileHandler")
	}
	return h.WriteText(text)
}

// WriteText replaces the file contents with text.
func (h *TextFileHandler) WriteText(text string) error {
	return h.writeAll([]byte(text))
}

// BinaryFileHandler reads and writes raw bytes.
type BinaryFileHandler struct {
	fileHandler
}

// NewBinaryFileHandler creates a handler for the binary file name on fsys.
func NewBinaryFileHandler(fsys driven.FileSystem, name string) (*BinaryFileHandler, error) {
	base, err := newFileHandler(fsys, name, "BinaryFileHandler", "binary")
	if err != nil {
		return nil, err
	}
	return &BinaryFileHandler{fileHandler: base}, nil
}

// Read returns the file contents as a []byte.
func (h *BinaryFileHandler) Read() (any, error) {
	data, err := h.ReadBytes()
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ReadBytes returns the file contents.
func (h *BinaryFileHandler) ReadBytes() ([]byte, error) {
	data, err := h.readAll()
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// Write replaces the file contents. Content must be a []byte.
func (h *BinaryFileHandler) Write(content any) error {
	data, ok := content.([]byte)
	if !ok {
		return domain.NewError(domain.ErrTypeMismatch, "Content must be bytes for BinaryFileHandler")
	}
	return h.WriteBytes(data)
}

// WriteBytes replaces the file contents with data.
func (h *BinaryFileHandler) WriteBytes(data []byte) error {
	return h.writeAll(data)
}
