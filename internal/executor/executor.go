package executor

import (
	"context"
	"io"
)

// Executor hands the terminal to an interactive subshell
type Executor interface {
	// Shell runs a subshell with the environment at opts.EnvPath activated and
	// blocks until the user exits it
	Shell(ctx context.Context, opts ShellOptions) error
}

// ShellOptions contains parameters for an activation subshell
type ShellOptions struct {
	EnvPath string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}
