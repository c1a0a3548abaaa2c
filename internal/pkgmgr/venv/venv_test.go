package venv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/venman-dev/venman/internal/pkgmgr"
)

// fakePython understands only "-m venv <path>" and lays out a POSIX
// environment whose pip records its arguments to pip.log.
const fakePython = `if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
  mkdir -p "$3/bin"
  : > "$3/bin/activate"
  cat > "$3/bin/pip" <<'PIP'
#!/bin/sh
echo "$@" >> "$(dirname "$0")/../pip.log"
PIP
  chmod +x "$3/bin/pip"
  exit 0
fi
echo "unsupported: $*" >&2
exit 2
`

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

func TestName(t *testing.T) {
	pm := &VenvManager{python: "python3"}
	if pm.Name() != "venv" {
		t.Errorf("Expected name 'venv', got '%s'", pm.Name())
	}
}

func TestRegistered(t *testing.T) {
	python := writeScript(t, t.TempDir(), "python", fakePython)

	pm, err := pkgmgr.NewWithPath("venv", python)
	if err != nil {
		t.Fatalf("NewWithPath: %v", err)
	}
	if pm.Name() != "venv" {
		t.Fatalf("Name() = %q", pm.Name())
	}
}

func TestNewWithPath_MissingInterpreter(t *testing.T) {
	if _, err := NewWithPath(filepath.Join(t.TempDir(), "python9")); err == nil {
		t.Fatal("expected error for missing interpreter")
	}
}

func TestCreateAndInstall(t *testing.T) {
	python := writeScript(t, t.TempDir(), "python", fakePython)
	pm, err := NewWithPath(python)
	if err != nil {
		t.Fatal(err)
	}

	envPath := filepath.Join(t.TempDir(), "alpha")
	ctx := context.Background()

	if err := pm.Create(ctx, pkgmgr.CreateOptions{EnvPath: envPath}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := os.Stat(pkgmgr.ActivationScript(envPath)); err != nil {
		t.Fatalf("activation script missing after create: %v", err)
	}

	err = pm.Install(ctx, pkgmgr.InstallOptions{EnvPath: envPath, Packages: []string{"requests", "click"}})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	logged, err := os.ReadFile(filepath.Join(envPath, "pip.log"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(logged)) != "install requests click" {
		t.Fatalf("pip args = %q", logged)
	}
}

func TestCreate_Failure(t *testing.T) {
	python := writeScript(t, t.TempDir(), "python", "echo 'Error: ensurepip is not available' >&2\nexit 1\n")
	pm, err := NewWithPath(python)
	if err != nil {
		t.Fatal(err)
	}

	err = pm.Create(context.Background(), pkgmgr.CreateOptions{EnvPath: filepath.Join(t.TempDir(), "alpha")})
	if !errors.Is(err, pkgmgr.ErrEnvironmentCreationFailed) {
		t.Fatalf("err = %v, want ErrEnvironmentCreationFailed", err)
	}
	var cmdErr *pkgmgr.CommandError
	if !errors.As(err, &cmdErr) || !strings.Contains(cmdErr.Output, "ensurepip is not available") {
		t.Fatalf("expected diagnostics in error, got %v", err)
	}
}

func TestInstall_Validation(t *testing.T) {
	pm := &VenvManager{python: "python3"}
	ctx := context.Background()

	if err := pm.Install(ctx, pkgmgr.InstallOptions{Packages: []string{"x"}}); err == nil {
		t.Error("expected error for empty env path")
	}
	if err := pm.Install(ctx, pkgmgr.InstallOptions{EnvPath: "/tmp/x"}); err == nil {
		t.Error("expected error for empty package list")
	}
	if err := pm.Create(ctx, pkgmgr.CreateOptions{}); err == nil {
		t.Error("expected error for empty env path")
	}
}
