package pkgmgr

import (
	"context"
	"io"
)

// PackageManager is the interface that all environment backends must implement
type PackageManager interface {
	// Name returns the backend name (e.g., "venv", "uv")
	Name() string

	// Create creates a new environment at opts.EnvPath
	Create(ctx context.Context, opts CreateOptions) error

	// Install installs packages into an existing environment
	Install(ctx context.Context, opts InstallOptions) error
}

// CreateOptions contains parameters for creating a new environment
type CreateOptions struct {
	EnvPath   string    // Path where environment will be created
	LogWriter io.Writer // Optional writer for streaming command output
}

// InstallOptions contains parameters for installing packages
type InstallOptions struct {
	EnvPath   string    // Path to environment
	Packages  []string  // Package specs passed verbatim to the installer
	LogWriter io.Writer // Optional writer for streaming command output
}
