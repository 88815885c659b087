package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/logger"
)

// ruler separates blocks of a walkthrough.
var ruler = strings.Repeat("-", 50)

// transcript writes walkthrough lines and keeps the first write error.
type transcript struct {
	w   io.Writer
	err error
}

func newTranscript(w io.Writer) *transcript {
	if w == nil {
		w = io.Discard
	}
	return &transcript{w: w}
}

func (t *transcript) println(a ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, a...)
}

func (t *transcript) printf(format string, a ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", a...)
}

// expect prints err under prefix when it has the given kind.
// A nil err prints nothing. Any other error is returned so the
// walkthrough's catch-all reports it.
func (t *transcript) expect(err, kind error, prefix string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		t.printf("%s%v", prefix, err)
		return nil
	}
	return err
}

// guard runs a walkthrough body and reports the transcript result.
func (t *transcript) guard(exercise string, body func() error) error {
	t.catch(exercise, body)
	return t.result(exercise)
}

// catch runs body. An error escaping it is printed and logged instead of
// ending the run.
func (t *transcript) catch(exercise string, body func() error) {
	if err := body(); err != nil {
		logger.Warn("%s: unexpected error (kind: %v): %v", exercise, domain.KindOf(err), err)
		t.printf("An unexpected error occurred: %v", err)
	}
}

// result returns the first write error, if any.
func (t *transcript) result(exercise string) error {
	if t.err != nil {
		return fmt.Errorf("write %s transcript: %w", exercise, t.err)
	}
	return nil
}
