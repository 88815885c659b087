package driving

import "github.com/custodia-labs/classwork/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// SetFilesDir updates the directory used by the file handler exercise.
	SetFilesDir(dir string) error

	// SetVerbose toggles verbose logging.
	SetVerbose(verbose bool) error

	// Validate checks if current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
