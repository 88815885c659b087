package domain

import "errors"

// Domain errors classify every failure an exercise can raise.
// Callers match them with errors.Is.
var (
	// ErrInvalidInput indicates a constructor rejected its arguments
	// (non-positive dimension, negative border width, empty name, negative age,
	// empty filename).
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapabilityMissing indicates a value lacks a behaviour the caller needs.
	ErrCapabilityMissing = errors.New("capability missing")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTypeMismatch indicates content of the wrong kind was handed to a handler.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIO indicates a transfer failure other than a missing file.
	ErrIO = errors.New("i/o error")
)

// Error is a classified failure.
// It prints only its message (and cause, when set) so demonstration output
// stays readable, while errors.Is still matches Kind and the cause.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Msg is the human-readable message.
	Msg string

	// Path is the file involved, if any.
	Path string

	// Err is the underlying cause, if any.
	Err error
}

// NewError creates a classified error without a cause.
func NewError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError creates a classified error for path that carries cause.
func WrapError(kind error, msg, path string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Path: path, Err: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the sentinel kind of err, or nil when err is unclassified.
func KindOf(err error) error {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	for _, kind := range []error{ErrInvalidInput, ErrCapabilityMissing, ErrNotFound, ErrTypeMismatch, ErrIO} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
