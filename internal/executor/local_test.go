package executor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/venman-dev/venman/internal/config"
	"github.com/venman-dev/venman/internal/pkgmgr"
)

func TestShellCommand_Posix(t *testing.T) {
	e := &LocalExecutor{shell: "bash", goos: "linux"}
	envPath := filepath.Join("home", "venman", "venvs", "alpha")

	cmd := e.ShellCommand(context.Background(), envPath)
	want := []string{"bash", "-c", activateScript, "venman", pkgmgr.ActivationScript(envPath)}
	if len(cmd.Args) != len(want) {
		t.Fatalf("Args = %q, want %q", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], want[i])
		}
	}
}

func TestShellCommand_Windows(t *testing.T) {
	e := &LocalExecutor{shell: "bash", goos: "windows"}
	cmd := e.ShellCommand(context.Background(), `C:\venman\venvs\alpha`)
	if len(cmd.Args) != 3 || cmd.Args[0] != "cmd" || cmd.Args[1] != "/K" {
		t.Fatalf("Args = %q", cmd.Args)
	}
}

func TestNewLocalExecutor_DefaultShell(t *testing.T) {
	e := NewLocalExecutor(&config.Config{})
	if e.shell != "bash" {
		t.Fatalf("shell = %q, want bash", e.shell)
	}
}

func TestShell_RunsConfiguredShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX only")
	}
	dir := t.TempDir()
	fake := filepath.Join(dir, "fakesh")
	// Print the activation script path ($4 after -c, script, argv0) and fail,
	// like a user leaving the shell after a failed command.
	if err := os.WriteFile(fake, []byte("#!/bin/sh\necho \"activated $4\"\nexit 7\n"), 0755); err != nil {
		t.Fatal(err)
	}

	e := NewLocalExecutor(&config.Config{Shell: fake})
	envPath := filepath.Join(dir, "alpha")

	var stdout bytes.Buffer
	err := e.Shell(context.Background(), ShellOptions{
		EnvPath: envPath,
		Stdin:   strings.NewReader(""),
		Stdout:  &stdout,
		Stderr:  &stdout,
	})
	if err != nil {
		t.Fatalf("Shell: %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "activated "+pkgmgr.ActivationScript(envPath) {
		t.Fatalf("output = %q", stdout.String())
	}
}

func TestShell_StartFailure(t *testing.T) {
	e := &LocalExecutor{shell: filepath.Join(t.TempDir(), "missing-shell"), goos: "linux"}
	if runtime.GOOS == "windows" {
		t.Skip("POSIX only")
	}
	err := e.Shell(context.Background(), ShellOptions{EnvPath: "x"})
	if err == nil {
		t.Fatal("expected error when shell cannot start")
	}
}
