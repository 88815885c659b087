package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available exercises",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output exercises as JSON")
	rootCmd.AddCommand(listCmd)
}

// exerciseJSON is the JSON shape of one listed exercise.
type exerciseJSON struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if catalog == nil {
		return errCatalogNotConfigured
	}

	infos := catalog.List()

	if listJSON {
		out := make([]exerciseJSON, 0, len(infos))
		for _, info := range infos {
			out = append(out, exerciseJSON{Name: info.Name, Title: info.Title, Summary: info.Summary})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal exercises: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(infos) == 0 {
		cmd.Println("No exercises registered.")
		return nil
	}

	cmd.Println("Exercises:")
	cmd.Println()
	for _, info := range infos {
		cmd.Printf("  %-10s %s\n", info.Name, info.Title)
		cmd.Printf("  %-10s %s\n", "", info.Summary)
	}
	cmd.Println()
	cmd.Println(`Run one with "classwork run <name>".`)

	return nil
}
