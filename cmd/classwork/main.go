// Command classwork runs the object-oriented programming exercises.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/classwork/internal/adapters/driven/config/file"
	"github.com/custodia-labs/classwork/internal/adapters/driven/storage/billyfs"
	"github.com/custodia-labs/classwork/internal/adapters/driving/cli"
	"github.com/custodia-labs/classwork/internal/core/services"
	"github.com/custodia-labs/classwork/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("config file: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", configStore.Path(), err)
	}

	fsys := billyfs.NewLocal(settings.FilesDir)
	logger.Debug("files dir: %s", fsys.Root())

	return &cli.Services{
		Catalog:  services.NewDefaultCatalog(fsys),
		Settings: settingsService,
	}, nil
}
