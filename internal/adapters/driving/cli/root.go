// Package cli provides the command-line interface for classwork.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/classwork/internal/core/ports/driving"
	"github.com/custodia-labs/classwork/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by the composition root.
var (
	catalog         driving.ExerciseCatalog
	settingsService driving.SettingsService
)

// Persistent flag values.
var (
	verboseFlag   bool
	configDirFlag string
)

// errCatalogNotConfigured is returned when no catalog has been wired.
var errCatalogNotConfigured = errors.New("exercise catalog not configured")

// Options carries the persistent flag values to the bootstrap function.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty means the default.
	ConfigDir string

	// Verbose is true when --verbose was passed.
	Verbose bool
}

// Services holds what the bootstrap function builds.
type Services struct {
	Catalog  driving.ExerciseCatalog
	Settings driving.SettingsService
}

// BootstrapFunc builds the services once flags are parsed.
type BootstrapFunc func(opts Options) (*Services, error)

var bootstrap BootstrapFunc

var rootCmd = &cobra.Command{
	Use:   "classwork",
	Short: "Object-oriented programming exercises",
	Long: `classwork runs five small object-oriented programming exercises and
prints their demonstration walkthroughs:

  vehicles  - vehicle hierarchy with overridden behaviour
  shapes    - shape areas and a polymorphic total
  styled    - styled shapes that call their base implementation
  animals   - animal sounds and a runtime capability probe
  files     - text and binary file handlers with error translation

Run "classwork list" to see them, or "classwork run --all" to run every one.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.classwork)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// ExecuteContext runs the root command with ctx, so an interrupt
// cancels a running walkthrough.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if bootstrap != nil {
		services, err := bootstrap(Options{ConfigDir: configDirFlag, Verbose: verboseFlag})
		if err != nil {
			return fmt.Errorf("failed to initialise: %w", err)
		}
		catalog = services.Catalog
		settingsService = services.Settings
	}

	if settingsService != nil && !verboseFlag {
		if settings, err := settingsService.Get(); err == nil && settings.Verbose {
			logger.SetVerbose(true)
		}
	}

	logger.Debug("config dir: %q", configDirFlag)
	return nil
}
