package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure classwork settings.

Settings are stored in config.toml inside the configuration directory
(~/.classwork unless --config-dir is given).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetDirCmd = &cobra.Command{
	Use:   "set-dir <dir>",
	Short: "Set the directory the file handler exercise writes into",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetDir,
}

var settingsSetVerboseCmd = &cobra.Command{
	Use:   "set-verbose <true|false>",
	Short: "Enable or disable verbose logging by default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetVerbose,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetDirCmd)
	settingsCmd.AddCommand(settingsSetVerboseCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Files]")
	cmd.Printf("  Directory: %s\n", settings.FilesDir)
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Verbose: %t\n", settings.Verbose)

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}

	return nil
}

func runSettingsSetDir(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.SetFilesDir(args[0]); err != nil {
		return fmt.Errorf("failed to set files directory: %w", err)
	}

	cmd.Printf("Files directory set to: %s\n", args[0])
	return nil
}

func runSettingsSetVerbose(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	verbose, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q: expected true or false", args[0])
	}

	if err := settingsService.SetVerbose(verbose); err != nil {
		return fmt.Errorf("failed to set verbose: %w", err)
	}

	cmd.Printf("Verbose logging set to: %t\n", verbose)
	return nil
}
