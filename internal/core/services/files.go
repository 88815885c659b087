package services

import (
	"context"
	"io"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driven"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
	"github.com/custodia-labs/classwork/internal/logger"
)

// Ensure FilesExercise implements the interface.
var _ driving.Exercise = (*FilesExercise)(nil)

// Files the walkthrough creates and removes.
const (
	demoTextFile    = "example.txt"
	demoBinaryFile  = "example.bin"
	demoMissingFile = "nonexistent.txt"
)

// FilesExercise walks through the text and binary file handlers.
// It writes its scratch files into fsys and removes them before returning.
type FilesExercise struct {
	fsys driven.FileSystem
}

// NewFilesExercise creates the file handler walkthrough over fsys.
func NewFilesExercise(fsys driven.FileSystem) *FilesExercise {
	return &FilesExercise{fsys: fsys}
}

// Info returns the exercise metadata.
func (e *FilesExercise) Info() domain.ExerciseInfo {
	return domain.ExerciseInfo{
		Name:    "files",
		Title:   "File Handlers",
		Summary: "Text and binary handlers with type-checked content and error translation",
	}
}

// Run prints the walkthrough to w.
func (e *FilesExercise) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := newTranscript(w)
	func() {
		defer e.cleanup(t)
		t.catch("files", func() error {
			return e.walkthrough(t)
		})
	}()

	return t.result("files")
}

func (e *FilesExercise) walkthrough(t *transcript) error {
	textHandler, err := NewTextFileHandler(e.fsys, demoTextFile)
	if err != nil {
		return err
	}
	binaryHandler, err := NewBinaryFileHandler(e.fsys, demoBinaryFile)
	if err != nil {
		return err
	}

	t.println("Text File Handler Demonstration:")
	t.println(textHandler.FileInfo())

	textContent := "Hello, this is a text file!"
	if err := textHandler.Write(textContent); err != nil {
		return err
	}
	t.printf("Written to text file: %s", textContent)

	textRead, err := textHandler.Read()
	if err != nil {
		return err
	}
	t.printf("Read from text file: %s", textRead)
	t.println()

	t.println("Binary File Handler Demonstration:")
	t.println(binaryHandler.FileInfo())

	binaryContent := []byte("Binary data \x00\x01\x02")
	if err := binaryHandler.Write(binaryContent); err != nil {
		return err
	}
	t.printf("Written to binary file: %q", binaryContent)

	binaryRead, err := binaryHandler.Read()
	if err != nil {
		return err
	}
	t.printf("Read from binary file: %q", binaryRead)
	t.println()

	t.println("Testing Error Handling:")
	if _, err := NewTextFileHandler(e.fsys, ""); t.expect(err, domain.ErrInvalidInput, "Error: ") != nil {
		return err
	}
	if err := textHandler.Write(123); t.expect(err, domain.ErrTypeMismatch, "Error: ") != nil {
		return err
	}
	if err := binaryHandler.Write("Not bytes"); t.expect(err, domain.ErrTypeMismatch, "Error: ") != nil {
		return err
	}

	missing, err := NewTextFileHandler(e.fsys, demoMissingFile)
	if err != nil {
		return err
	}
	if _, err := missing.Read(); t.expect(err, domain.ErrNotFound, "Error: ") != nil {
		return err
	}
	return nil
}

// cleanup removes the scratch files on every exit path.
func (e *FilesExercise) cleanup(t *transcript) {
	if e.fsys == nil {
		return
	}
	for _, name := range []string{demoTextFile, demoBinaryFile} {
		ok, err := e.fsys.Exists(name)
		if err != nil {
			logger.Warn("files: checking %s: %v", name, err)
			continue
		}
		if !ok {
			continue
		}
		if err := e.fsys.Remove(name); err != nil {
			logger.Warn("files: removing %s: %v", name, err)
			continue
		}
		t.printf("Cleaned up file: %s", name)
	}
}
