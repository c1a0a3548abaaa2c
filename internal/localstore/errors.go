package localstore

import "errors"

var (
	// ErrConfigUnreadable indicates venvs.toml exists but could not be read.
	ErrConfigUnreadable = errors.New("could not read configuration file")

	// ErrConfigMalformed indicates venvs.toml is not a table of tables.
	ErrConfigMalformed = errors.New("invalid configuration format")

	// ErrDirectoryUnreadable indicates the environments directory could not be listed.
	ErrDirectoryUnreadable = errors.New("could not read environments directory")
)
