package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/core/ports/driven"
	"github.com/custodia-labs/classwork/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyFilesDir = "files.dir"
	keyVerbose  = "log.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	return &domain.Settings{
		FilesDir: s.getString(keyFilesDir, defaults.FilesDir),
		Verbose:  s.getBool(keyVerbose, defaults.Verbose),
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.NewError(domain.ErrInvalidInput, "settings are required")
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if s.configStore == nil {
		return fmt.Errorf("save settings: no config store")
	}

	if err := s.configStore.Set(keyFilesDir, settings.FilesDir); err != nil {
		return fmt.Errorf("save %s: %w", keyFilesDir, err)
	}
	if err := s.configStore.Set(keyVerbose, settings.Verbose); err != nil {
		return fmt.Errorf("save %s: %w", keyVerbose, err)
	}

	return s.configStore.Save()
}

// SetFilesDir updates the directory used by the file handler exercise.
func (s *SettingsService) SetFilesDir(dir string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.FilesDir = strings.TrimSpace(dir)

	return s.Save(settings)
}

// SetVerbose toggles verbose logging.
func (s *SettingsService) SetVerbose(verbose bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Verbose = verbose

	return s.Save(settings)
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
