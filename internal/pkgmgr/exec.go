package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
)

// Run executes name with args, capturing combined output. When logWriter is
// set the output is also streamed to it. A non-zero exit or a failure to
// start is reported as a *CommandError of the given kind.
func Run(ctx context.Context, kind error, logWriter io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var output bytes.Buffer
	var w io.Writer = &output
	if logWriter != nil {
		w = io.MultiWriter(&output, logWriter)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	slog.Debug("running external tool", "cmd", name, "args", args)

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Kind:     kind,
			Args:     append([]string{name}, args...),
			ExitCode: -1,
			Output:   output.String(),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		} else {
			cmdErr.Err = err
		}
		slog.Debug("external tool failed", "cmd", name, "exit_code", cmdErr.ExitCode)
		return cmdErr
	}
	return nil
}
