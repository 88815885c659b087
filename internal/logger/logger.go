// Package logger provides verbose logging for the classwork CLI.
// When verbose mode is enabled via the --verbose flag (or log.verbose in the
// config file), debug messages are printed to stderr so users can follow
// which exercise ran, under which run ID, and how long it took.
// Exercise walkthrough output never goes through this package.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Entry logs lines tagged with a run ID.
type Entry struct {
	tag string
}

// Run returns an Entry whose lines carry the given run ID.
// Long IDs are shortened to their first eight characters.
func Run(id string) Entry {
	if len(id) > 8 {
		id = id[:8]
	}
	return Entry{tag: "run=" + id + " "}
}

// Debug prints a tagged debug message.
func (e Entry) Debug(format string, args ...any) {
	logf("[DEBUG] "+e.tag, format, args...)
}

// Info prints a tagged informational message.
func (e Entry) Info(format string, args ...any) {
	logf("[INFO] "+e.tag, format, args...)
}

// Warn prints a tagged warning.
func (e Entry) Warn(format string, args ...any) {
	logf("[WARN] "+e.tag, format, args...)
}
