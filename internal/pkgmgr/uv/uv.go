package uv

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/venman-dev/venman/internal/pkgmgr"
)

func init() {
	pkgmgr.Register("uv", func(customPath string) (pkgmgr.PackageManager, error) {
		return NewWithPath(customPath)
	})
}

// UvManager creates environments with "uv venv" and installs packages with
// "uv pip install" targeted at the environment's interpreter.
type UvManager struct {
	uvPath string
}

// New creates a new UvManager using uv from PATH
func New() (*UvManager, error) {
	return NewWithPath("")
}

// NewWithPath creates a new UvManager with a custom uv binary path
func NewWithPath(customPath string) (*UvManager, error) {
	uvPath := customPath
	if uvPath == "" {
		uvPath = "uv"
	}
	path, err := exec.LookPath(uvPath)
	if err != nil {
		return nil, fmt.Errorf("uv not found (install it from https://docs.astral.sh/uv): %w", err)
	}
	return &UvManager{uvPath: path}, nil
}

// Name returns the backend name
func (u *UvManager) Name() string {
	return "uv"
}

// BinaryPath returns the path to the uv binary
func (u *UvManager) BinaryPath() string {
	return u.uvPath
}

// Create runs "uv venv <path>"
func (u *UvManager) Create(ctx context.Context, opts pkgmgr.CreateOptions) error {
	if opts.EnvPath == "" {
		return fmt.Errorf("environment path is required")
	}
	return pkgmgr.Run(ctx, pkgmgr.ErrEnvironmentCreationFailed, opts.LogWriter,
		u.uvPath, "venv", opts.EnvPath)
}

// Install runs "uv pip install --python <env python> <packages...>"
func (u *UvManager) Install(ctx context.Context, opts pkgmgr.InstallOptions) error {
	if opts.EnvPath == "" {
		return fmt.Errorf("environment path is required")
	}
	if len(opts.Packages) == 0 {
		return fmt.Errorf("at least one package is required")
	}
	args := append([]string{"pip", "install", "--python", pkgmgr.PythonPath(opts.EnvPath)}, opts.Packages...)
	return pkgmgr.Run(ctx, pkgmgr.ErrPackageInstallationFailed, opts.LogWriter, u.uvPath, args...)
}
