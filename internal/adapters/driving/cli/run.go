package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/classwork/internal/core/domain"
	"github.com/custodia-labs/classwork/internal/logger"
)

var runAllFlag bool

var runCmd = &cobra.Command{
	Use:   "run [exercise...]",
	Short: "Run one or more exercises",
	Long: `Run the named exercises in order and print their walkthroughs.

Examples:
  classwork run shapes
  classwork run vehicles animals
  classwork run --all`,
	RunE: runRun,
}

// shortcut registers "classwork <name>" for a single exercise.
type shortcut struct {
	name  string
	short string
}

var shortcuts = []shortcut{
	{"vehicles", "Run the vehicle hierarchy exercise"},
	{"shapes", "Run the shape area exercise"},
	{"styled", "Run the styled shape exercise"},
	{"animals", "Run the animal sound exercise"},
	{"files", "Run the file handler exercise"},
}

func init() {
	runCmd.Flags().BoolVarP(&runAllFlag, "all", "a", false, "run every exercise")
	rootCmd.AddCommand(runCmd)

	for _, s := range shortcuts {
		name := s.name
		rootCmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runExercises(cmd, []string{name})
			},
		})
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	if catalog == nil {
		return errCatalogNotConfigured
	}

	if runAllFlag {
		if len(args) > 0 {
			return errors.New("--all cannot be combined with exercise names")
		}
		reports, err := catalog.RunAll(cmd.Context(), cmd.OutOrStdout())
		logger.Info("ran %d exercises", len(reports))
		return err
	}

	if len(args) == 0 {
		return errors.New("specify an exercise name or --all (see \"classwork list\")")
	}

	return runExercises(cmd, args)
}

// runExercises checks every name before running any of them.
func runExercises(cmd *cobra.Command, names []string) error {
	if catalog == nil {
		return errCatalogNotConfigured
	}

	var unknown []string
	for _, name := range names {
		if _, err := catalog.Get(name); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown exercise %s (see \"classwork list\"): %w",
			strings.Join(unknown, ", "), domain.ErrNotFound)
	}

	out := cmd.OutOrStdout()
	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(out)
		}
		report, err := catalog.Run(cmd.Context(), name, out)
		if err != nil {
			return err
		}
		logger.Debug("%s finished (run %s, %s)", name, report.ShortID(), report.Duration)
	}
	return nil
}
