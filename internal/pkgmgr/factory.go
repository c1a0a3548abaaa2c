package pkgmgr

import (
	"fmt"
	"sort"
)

// FactoryFunc creates a backend. customPath is the binary the backend drives
// (the interpreter for venv, the uv executable for uv); empty means look it up.
type FactoryFunc func(customPath string) (PackageManager, error)

var registry = make(map[string]FactoryFunc)

// Register registers a backend factory function
func Register(name string, factory FactoryFunc) {
	registry[name] = factory
}

// New creates a backend instance by name
func New(pmType string) (PackageManager, error) {
	return NewWithPath(pmType, "")
}

// NewWithPath creates a backend instance with a custom binary path
func NewWithPath(pmType string, customPath string) (PackageManager, error) {
	factory, ok := registry[pmType]
	if !ok {
		return nil, fmt.Errorf("unsupported package manager: %s", pmType)
	}
	return factory(customPath)
}

// Names returns the registered backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
