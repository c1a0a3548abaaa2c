package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes are POSIX only")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Success(t *testing.T) {
	tool := writeScript(t, t.TempDir(), "tool", "echo hello \"$1\"\n")

	var log bytes.Buffer
	if err := Run(context.Background(), ErrEnvironmentCreationFailed, &log, tool, "world"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(log.String()) != "hello world" {
		t.Fatalf("log = %q", log.String())
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	tool := writeScript(t, t.TempDir(), "tool", "echo 'Error: no space left on device' >&2\nexit 3\n")

	err := Run(context.Background(), ErrPackageInstallationFailed, nil, tool)
	if !errors.Is(err, ErrPackageInstallationFailed) {
		t.Fatalf("err = %v, want ErrPackageInstallationFailed", err)
	}
	if errors.Is(err, ErrEnvironmentCreationFailed) {
		t.Fatal("err must not match the other kind")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", cmdErr.ExitCode)
	}
	if !strings.Contains(cmdErr.Output, "no space left on device") {
		t.Errorf("Output = %q, want tool diagnostics verbatim", cmdErr.Output)
	}
	if !strings.Contains(err.Error(), "exit code 3") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRun_MissingBinary(t *testing.T) {
	err := Run(context.Background(), ErrEnvironmentCreationFailed, nil,
		filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrEnvironmentCreationFailed) {
		t.Fatalf("err = %v, want ErrEnvironmentCreationFailed", err)
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.ExitCode != -1 || cmdErr.Err == nil {
		t.Fatalf("unexpected error: %#v", err)
	}
	var execErr *exec.Error
	var pathErr *os.PathError
	if !errors.As(err, &execErr) && !errors.As(err, &pathErr) {
		t.Fatalf("underlying exec error should be reachable, got %v", cmdErr.Err)
	}
}

type fakeManager struct{ name string }

func (f *fakeManager) Name() string { return f.name }

func (f *fakeManager) Create(ctx context.Context, _ CreateOptions) error { return nil }

func (f *fakeManager) Install(ctx context.Context, _ InstallOptions) error { return nil }

func TestFactory(t *testing.T) {
	var gotPath string
	Register("fake-test", func(customPath string) (PackageManager, error) {
		gotPath = customPath
		return &fakeManager{name: "fake-test"}, nil
	})
	t.Cleanup(func() { delete(registry, "fake-test") })

	pm, err := NewWithPath("fake-test", "/opt/tool")
	if err != nil {
		t.Fatalf("NewWithPath: %v", err)
	}
	if pm.Name() != "fake-test" || gotPath != "/opt/tool" {
		t.Fatalf("factory not used correctly: name=%q path=%q", pm.Name(), gotPath)
	}

	found := false
	for _, n := range Names() {
		if n == "fake-test" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Names() = %v, missing fake-test", Names())
	}

	if _, err := New("nope"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLayout(t *testing.T) {
	env := filepath.Join("root", "venvs", "alpha")
	if runtime.GOOS == "windows" {
		if got := ActivationScript(env); got != filepath.Join(env, "Scripts", "activate.bat") {
			t.Errorf("ActivationScript = %q", got)
		}
		if got := PipPath(env); got != filepath.Join(env, "Scripts", "pip.exe") {
			t.Errorf("PipPath = %q", got)
		}
		return
	}
	if got := ActivationScript(env); got != filepath.Join(env, "bin", "activate") {
		t.Errorf("ActivationScript = %q", got)
	}
	if got := PipPath(env); got != filepath.Join(env, "bin", "pip") {
		t.Errorf("PipPath = %q", got)
	}
	if got := PythonPath(env); got != filepath.Join(env, "bin", "python") {
		t.Errorf("PythonPath = %q", got)
	}
}
