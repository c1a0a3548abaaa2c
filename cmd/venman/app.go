package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/venman-dev/venman/internal/executor"
	"github.com/venman-dev/venman/internal/localstore"
	"github.com/venman-dev/venman/internal/pkgmgr"
	"github.com/venman-dev/venman/internal/progress"
	"github.com/venman-dev/venman/internal/service"
	"golang.org/x/term"
)

// newService wires the registry service from the loaded settings.
func newService(cmd *cobra.Command) (*service.RegistryService, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	spinner := progress.New(cmd.OutOrStdout(), cfg.Spinner.Interval)
	return service.New(store, newBackend(), executor.NewLocalExecutor(cfg), spinner), nil
}

func openStore() (*localstore.Store, error) {
	if cfg.Home != "" {
		return localstore.NewStoreWithDir(cfg.Home), nil
	}
	store, err := localstore.NewStore()
	if err != nil {
		return nil, fmt.Errorf("could not find home directory: %w", err)
	}
	return store, nil
}

// newBackend builds the configured backend. A backend whose tool is missing
// only fails once it is asked to do something, so list and delete keep
// working without Python or uv on PATH.
func newBackend() pkgmgr.PackageManager {
	name := cfg.PackageManager.Backend
	custom := cfg.PackageManager.Python
	if name == "uv" {
		custom = cfg.PackageManager.UvPath
	}

	pm, err := pkgmgr.NewWithPath(name, custom)
	if err != nil {
		slog.Debug("backend unavailable", "backend", name, "error", err)
		return &unavailableBackend{name: name, err: err}
	}
	return pm
}

type unavailableBackend struct {
	name string
	err  error
}

func (b *unavailableBackend) Name() string { return b.name }

func (b *unavailableBackend) Create(ctx context.Context, opts pkgmgr.CreateOptions) error {
	return fmt.Errorf("%w: %v", pkgmgr.ErrEnvironmentCreationFailed, b.err)
}

func (b *unavailableBackend) Install(ctx context.Context, opts pkgmgr.InstallOptions) error {
	return fmt.Errorf("%w: %v", pkgmgr.ErrPackageInstallationFailed, b.err)
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
