package localstore

// Record is the metadata kept for one environment in venvs.toml.
type Record struct {
	Description string `toml:"description" json:"description" yaml:"description"`
	Packages    string `toml:"packages" json:"packages" yaml:"packages"` // whitespace separated, passed verbatim to the installer
}

// Entry pairs an on-disk environment with its record, if any.
type Entry struct {
	Name       string  `json:"name" yaml:"name"`
	Path       string  `json:"path" yaml:"path"`
	Configured bool    `json:"configured" yaml:"configured"`
	Record     *Record `json:"record,omitempty" yaml:"record,omitempty"`
}
