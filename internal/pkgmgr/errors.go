package pkgmgr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEnvironmentCreationFailed is matched by a CommandError from Create.
	ErrEnvironmentCreationFailed = errors.New("failed to create virtual environment")

	// ErrPackageInstallationFailed is matched by a CommandError from Install.
	ErrPackageInstallationFailed = errors.New("failed to install packages")
)

// CommandError describes an external tool that failed. Output holds the
// tool's captured stdout and stderr verbatim.
type CommandError struct {
	Kind     error
	Args     []string
	ExitCode int // -1 when the process could not be started
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " (exit code %d)", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		b.WriteString(": ")
		b.WriteString(out)
	}
	return b.String()
}

// Unwrap lets errors.Is match both the kind sentinel and the exec error.
func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
