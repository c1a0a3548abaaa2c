package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VENMAN_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PackageManager.Backend != "venv" {
		t.Errorf("Backend = %q, want venv", cfg.PackageManager.Backend)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Spinner.Interval != 80*time.Millisecond {
		t.Errorf("Spinner.Interval = %v, want 80ms", cfg.Spinner.Interval)
	}
	if cfg.Home != "" {
		t.Errorf("Home = %q, want empty", cfg.Home)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VENMAN_CONFIG_DIR", dir)

	content := []byte("backend: uv\nuv_path: /opt/uv\nlog:\n  level: debug\nspinner:\n  interval: 120ms\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PackageManager.Backend != "uv" || cfg.PackageManager.UvPath != "/opt/uv" {
		t.Errorf("unexpected package manager config: %+v", cfg.PackageManager)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Spinner.Interval != 120*time.Millisecond {
		t.Errorf("Spinner.Interval = %v, want 120ms", cfg.Spinner.Interval)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VENMAN_CONFIG_DIR", t.TempDir())
	t.Setenv("VENMAN_HOME", "/tmp/registry")
	t.Setenv("VENMAN_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Home != "/tmp/registry" {
		t.Errorf("Home = %q, want /tmp/registry", cfg.Home)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_UnsupportedBackend(t *testing.T) {
	t.Setenv("VENMAN_CONFIG_DIR", t.TempDir())
	t.Setenv("VENMAN_BACKEND", "pixi")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}
