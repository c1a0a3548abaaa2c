package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	envsDirName    = "venvs"
	configFileName = "venvs.toml"
)

// Store manages the venman registry: the environments directory and the
// venvs.toml configuration file beneath a single root.
type Store struct {
	mu      sync.Mutex
	dataDir string
}

// NewStore creates a Store rooted at ~/venman.
// Can be overridden with VENMAN_HOME env var.
func NewStore() (*Store, error) {
	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, fmt.Errorf("determining registry root: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// NewStoreWithDir creates a Store with a custom registry root.
func NewStoreWithDir(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// DataDir returns the registry root.
func (s *Store) DataDir() string {
	return s.dataDir
}

// EnvsDir returns the directory holding one subdirectory per environment.
func (s *Store) EnvsDir() string {
	return filepath.Join(s.dataDir, envsDirName)
}

// ConfigPath returns the path to venvs.toml.
func (s *Store) ConfigPath() string {
	return filepath.Join(s.dataDir, configFileName)
}

// EnvPath returns the directory for the named environment.
func (s *Store) EnvPath(name string) string {
	return filepath.Join(s.EnvsDir(), name)
}

// EnsureDirs creates the registry root and the environments directory.
func (s *Store) EnsureDirs() error {
	if err := os.MkdirAll(s.EnvsDir(), 0755); err != nil {
		return fmt.Errorf("creating environments directory: %w", err)
	}
	return nil
}

func defaultDataDir() (string, error) {
	if dir := os.Getenv("VENMAN_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "venman"), nil
}
