package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/venman-dev/venman/internal/config"
	"github.com/venman-dev/venman/internal/pkgmgr"
)

// activateScript sources the activation script passed as $1, then replaces
// itself with the user's login shell.
const activateScript = `source "$1" && exec "${SHELL:-bash}"`

// LocalExecutor runs activation subshells on the local machine
type LocalExecutor struct {
	shell string // Shell that sources the activation script (POSIX only)
	goos  string
}

// NewLocalExecutor creates a new local executor
func NewLocalExecutor(cfg *config.Config) *LocalExecutor {
	shell := cfg.Shell
	if shell == "" {
		shell = "bash"
	}
	return &LocalExecutor{shell: shell, goos: runtime.GOOS}
}

// ShellCommand builds the activation subshell command for envPath.
func (e *LocalExecutor) ShellCommand(ctx context.Context, envPath string) *exec.Cmd {
	script := pkgmgr.ActivationScript(envPath)
	if e.goos == "windows" {
		return exec.CommandContext(ctx, "cmd", "/K", script)
	}
	return exec.CommandContext(ctx, e.shell, "-c", activateScript, "venman", script)
}

// Shell runs the activation subshell attached to the given streams. The
// subshell's own exit status is not an error: it is whatever the user's
// last command returned.
func (e *LocalExecutor) Shell(ctx context.Context, opts ShellOptions) error {
	cmd := e.ShellCommand(ctx, opts.EnvPath)
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	slog.Debug("starting activation shell", "env", opts.EnvPath, "args", cmd.Args)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("activation shell exited", "exit_code", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("failed to start shell: %w", err)
	}
	return nil
}
