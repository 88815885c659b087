package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classwork/internal/adapters/driven/storage/billyfs"
	"github.com/custodia-labs/classwork/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/classwork/internal/core/services"
)

// withServices wires real services backed by in-memory adapters and
// restores the package state when the test ends.
func withServices(t *testing.T) *memory.ConfigStore {
	t.Helper()

	store := memory.NewConfigStore()
	origCatalog, origSettings := catalog, settingsService
	catalog = services.NewDefaultCatalog(billyfs.NewMemory())
	settingsService = services.NewSettingsService(store)

	t.Cleanup(func() {
		catalog, settingsService = origCatalog, origSettings
		runAllFlag = false
		listJSON = false
		rootCmd.SetArgs(nil)
	})
	return store
}

// execute runs rootCmd with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	want := []string{"run", "list", "settings", "tui", "mcp", "version",
		"vehicles", "shapes", "styled", "animals", "files"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		require.True(t, registered[name], "command %q should be registered", name)
	}
}
