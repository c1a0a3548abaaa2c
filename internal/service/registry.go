package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/venman-dev/venman/internal/executor"
	"github.com/venman-dev/venman/internal/localstore"
	"github.com/venman-dev/venman/internal/pkgmgr"
	"golang.org/x/text/cases"
)

// Progress shows a cosmetic indicator while an external tool runs. The
// returned function stops it and prints final.
type Progress interface {
	Start(ctx context.Context, message string) (stop func(final string))
}

// RegistryService implements the registry operations over the store, an
// environment backend and a shell executor.
type RegistryService struct {
	store    *localstore.Store
	pm       pkgmgr.PackageManager
	executor executor.Executor
	progress Progress
}

// New creates a new RegistryService.
func New(store *localstore.Store, pm pkgmgr.PackageManager, exec executor.Executor, progress Progress) *RegistryService {
	return &RegistryService{store: store, pm: pm, executor: exec, progress: progress}
}

// Store returns the underlying registry store.
func (s *RegistryService) Store() *localstore.Store {
	return s.store
}

// CreateRequest holds the inputs of a create operation.
type CreateRequest struct {
	Name        string
	Description string
	Packages    string // whitespace separated
}

// ValidateName trims name and checks it is usable as a single directory name.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", &ValidationError{Message: "environment name is required"}
	case name == "." || name == "..":
		return "", &ValidationError{Message: fmt.Sprintf("invalid environment name %q", name)}
	case strings.ContainsAny(name, `/\`):
		return "", &ValidationError{Message: fmt.Sprintf("environment name %q must not contain path separators", name)}
	}
	return name, nil
}

// Create creates the environment, records it, and installs packages.
//
// The environment is created before its record is written; if creation
// fails the partial directory is removed and the configuration is untouched.
// A package installation failure leaves both the directory and the record.
func (s *RegistryService) Create(ctx context.Context, req CreateRequest) error {
	name, err := ValidateName(req.Name)
	if err != nil {
		return err
	}

	if err := s.store.EnsureDirs(); err != nil {
		return err
	}

	if s.store.EnvExists(name) {
		return fmt.Errorf("%w: %q", ErrEnvironmentExists, name)
	}
	if _, ok, err := s.store.Lookup(name); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("%w: %q has a configuration entry", ErrEnvironmentExists, name)
	}

	intent, err := s.store.BeginIntent(localstore.OpCreate, name)
	if err != nil {
		return err
	}

	envPath := s.store.EnvPath(name)
	slog.Info("creating environment", "name", name, "path", envPath, "backend", s.pm.Name())

	stop := s.progress.Start(ctx, fmt.Sprintf("Creating env %q. please wait...", name))
	err = s.pm.Create(ctx, pkgmgr.CreateOptions{EnvPath: envPath})
	if err != nil {
		stop("")
		if rmErr := os.RemoveAll(envPath); rmErr != nil {
			slog.Warn("failed to remove partial environment", "path", envPath, "error", rmErr)
		}
		s.clearIntent(intent)
		return err
	}
	stop("Done!")

	record := localstore.Record{Description: req.Description, Packages: strings.TrimSpace(req.Packages)}
	if err := s.store.Append(name, record); err != nil {
		// The intent stays behind so repair reports the unconfigured directory.
		return fmt.Errorf("saving configuration: %w", err)
	}

	if packages := strings.Fields(record.Packages); len(packages) > 0 {
		stop := s.progress.Start(ctx, fmt.Sprintf("Installing packages %q. please wait...", record.Packages))
		err := s.pm.Install(ctx, pkgmgr.InstallOptions{EnvPath: envPath, Packages: packages})
		if err != nil {
			stop("")
			s.clearIntent(intent)
			return err
		}
		stop("Done!")
	}

	s.clearIntent(intent)
	slog.Info("environment created", "name", name)
	return nil
}

// ListResult is the outcome of List. Found is false when the environments
// directory does not exist at all.
type ListResult struct {
	Found   bool
	Entries []localstore.Entry
}

// List scans the environments directory and pairs each name with its record.
// When the directory is missing nothing is read or parsed.
func (s *RegistryService) List() (*ListResult, error) {
	if !s.store.EnvsDirExists() {
		return &ListResult{}, nil
	}
	entries, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}
	return &ListResult{Found: true, Entries: entries}, nil
}

// Names returns the environment directory names, or nil if there are none.
func (s *RegistryService) Names() []string {
	if !s.store.EnvsDirExists() {
		return nil
	}
	names, err := s.store.Scan()
	if err != nil {
		return nil
	}
	return names
}

// ActivateOptions wires the subshell to the caller's terminal. Announce, when
// set, is called with the environment just before the shell starts.
type ActivateOptions struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Announce func(localstore.Entry)
}

// Activate checks the environment and its activation script, then blocks in
// an interactive subshell until the user exits it.
func (s *RegistryService) Activate(ctx context.Context, name string, opts ActivateOptions) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}
	if !s.store.EnvExists(name) {
		return fmt.Errorf("%w: %q", ErrEnvironmentNotFound, name)
	}

	envPath := s.store.EnvPath(name)
	if _, err := os.Stat(pkgmgr.ActivationScript(envPath)); err != nil {
		return fmt.Errorf("%w: %s", ErrActivationScriptMissing, pkgmgr.ActivationScript(envPath))
	}

	entry := localstore.Entry{Name: name, Path: envPath}
	if rec, ok, err := s.store.Lookup(name); err != nil {
		slog.Debug("configuration unavailable for activation", "name", name, "error", err)
	} else if ok {
		entry.Configured = true
		entry.Record = &rec
	}
	if opts.Announce != nil {
		opts.Announce(entry)
	}

	slog.Info("activating environment", "name", name)
	return s.executor.Shell(ctx, executor.ShellOptions{
		EnvPath: envPath,
		Stdin:   opts.Stdin,
		Stdout:  opts.Stdout,
		Stderr:  opts.Stderr,
	})
}

var folder = cases.Fold()

// IsConfirmation reports whether input is the deletion confirmation token
// "yes", ignoring case and surrounding whitespace.
func IsConfirmation(input string) bool {
	return folder.String(strings.TrimSpace(input)) == "yes"
}

// Delete removes the environment directory and then its record, after
// confirm returns true. Nothing is touched if the directory is missing, the
// configuration is absent or cannot be loaded, or confirmation is refused.
func (s *RegistryService) Delete(ctx context.Context, name string, confirm func(name string) bool) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}
	if !s.store.EnvExists(name) {
		return fmt.Errorf("%w: %q", ErrEnvironmentNotFound, name)
	}

	if !s.store.ConfigExists() {
		return fmt.Errorf("%w: %s does not exist", localstore.ErrConfigUnreadable, s.store.ConfigPath())
	}
	if _, err := s.store.LoadConfig(); err != nil {
		return err
	}

	if confirm != nil && !confirm(name) {
		return ErrDeletionCancelled
	}

	intent, err := s.store.BeginIntent(localstore.OpDelete, name)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(s.store.EnvPath(name)); err != nil {
		s.clearIntent(intent)
		return fmt.Errorf("removing environment directory: %w", err)
	}
	if err := s.store.Remove(name); err != nil {
		// Directory is gone but the record remains; repair finishes the job.
		return fmt.Errorf("removing configuration entry: %w", err)
	}

	s.clearIntent(intent)
	slog.Info("environment deleted", "name", name)
	return nil
}

func (s *RegistryService) clearIntent(intent *localstore.Intent) {
	if err := s.store.ClearIntent(intent.ID); err != nil {
		slog.Warn("failed to clear journal intent", "id", intent.ID, "error", err)
	}
}

// IsNotFound reports whether err means the environment does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEnvironmentNotFound)
}
