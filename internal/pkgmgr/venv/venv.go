package venv

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/venman-dev/venman/internal/pkgmgr"
)

func init() {
	pkgmgr.Register("venv", func(customPath string) (pkgmgr.PackageManager, error) {
		return NewWithPath(customPath)
	})
}

// VenvManager creates environments with "python -m venv" and installs
// packages with the environment's own pip.
type VenvManager struct {
	python string // Interpreter used to create environments
}

// New creates a VenvManager using python3 (or python) from PATH
func New() (*VenvManager, error) {
	return NewWithPath("")
}

// NewWithPath creates a VenvManager with a custom interpreter
func NewWithPath(customPath string) (*VenvManager, error) {
	if customPath != "" {
		path, err := exec.LookPath(customPath)
		if err != nil {
			return nil, fmt.Errorf("python interpreter %q not found: %w", customPath, err)
		}
		return &VenvManager{python: path}, nil
	}

	for _, candidate := range []string{"python3", "python"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return &VenvManager{python: path}, nil
		}
	}
	// Not on PATH yet; Create reports the failure with the tool's diagnostics.
	return &VenvManager{python: "python3"}, nil
}

// Name returns the backend name
func (v *VenvManager) Name() string {
	return "venv"
}

// Python returns the interpreter used to create environments
func (v *VenvManager) Python() string {
	return v.python
}

// Create runs "python -m venv <path>"
func (v *VenvManager) Create(ctx context.Context, opts pkgmgr.CreateOptions) error {
	if opts.EnvPath == "" {
		return fmt.Errorf("environment path is required")
	}
	return pkgmgr.Run(ctx, pkgmgr.ErrEnvironmentCreationFailed, opts.LogWriter,
		v.python, "-m", "venv", opts.EnvPath)
}

// Install runs "<env>/bin/pip install <packages...>"
func (v *VenvManager) Install(ctx context.Context, opts pkgmgr.InstallOptions) error {
	if opts.EnvPath == "" {
		return fmt.Errorf("environment path is required")
	}
	if len(opts.Packages) == 0 {
		return fmt.Errorf("at least one package is required")
	}
	args := append([]string{"install"}, opts.Packages...)
	return pkgmgr.Run(ctx, pkgmgr.ErrPackageInstallationFailed, opts.LogWriter,
		pkgmgr.PipPath(opts.EnvPath), args...)
}
