package domain

import "strings"

// Settings holds the user-configurable application settings.
type Settings struct {
	// FilesDir is the directory the file handler exercise writes into.
	FilesDir string

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		FilesDir: ".",
		Verbose:  false,
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.FilesDir) == "" {
		return NewError(ErrInvalidInput, "files directory cannot be empty")
	}
	return nil
}
