package service

import "errors"

var (
	// ErrEnvironmentNotFound indicates the environment directory does not exist.
	ErrEnvironmentNotFound = errors.New("virtual environment not found")

	// ErrActivationScriptMissing indicates the environment has no activation entry point.
	ErrActivationScriptMissing = errors.New("activation script not found")

	// ErrEnvironmentExists indicates a create against a name already in the registry.
	ErrEnvironmentExists = errors.New("virtual environment already exists")

	// ErrInvalidName indicates a name that cannot be used as an environment directory.
	ErrInvalidName = errors.New("invalid environment name")

	// ErrDeletionCancelled indicates the user did not confirm a deletion.
	ErrDeletionCancelled = errors.New("deletion cancelled")
)

// ValidationError represents an invalid environment name. It matches
// ErrInvalidName under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidName }
