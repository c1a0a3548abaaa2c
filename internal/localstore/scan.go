package localstore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnvsDirExists reports whether the environments directory exists.
func (s *Store) EnvsDirExists() bool {
	info, err := os.Stat(s.EnvsDir())
	return err == nil && info.IsDir()
}

// EnvExists reports whether the named environment directory exists.
func (s *Store) EnvExists(name string) bool {
	info, err := os.Stat(s.EnvPath(name))
	return err == nil && info.IsDir()
}

// Scan lists the immediate subdirectories of the environments directory.
// Plain files are ignored. Order is that of os.ReadDir.
func (s *Store) Scan() ([]string, error) {
	entries, err := os.ReadDir(s.EnvsDir())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnreadable, err)
	}

	var names []string
	for _, e := range entries {
		if isDir(s.EnvsDir(), e) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// EnvSize returns the total size in bytes of the files under an environment.
// Entries that cannot be read are skipped.
func (s *Store) EnvSize(name string) (int64, error) {
	var size int64
	err := filepath.WalkDir(s.EnvPath(name), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				size += info.Size()
			}
		}
		return nil
	})
	return size, err
}

// isDir follows symlinks so a linked environment directory still counts.
func isDir(parent string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, e.Name()))
	return err == nil && info.IsDir()
}
