package localstore

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// LoadConfig reads venvs.toml. Returns an empty table if the file doesn't
// exist; the file is never created on load.
func (s *Store) LoadConfig() (map[string]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadConfigLocked()
}

// ConfigExists reports whether venvs.toml is present.
func (s *Store) ConfigExists() bool {
	info, err := os.Stat(s.ConfigPath())
	return err == nil && !info.IsDir()
}

func (s *Store) loadConfigLocked() (map[string]Record, error) {
	data, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]Record), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigUnreadable, err)
	}

	records := make(map[string]Record)
	if err := toml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
	}
	return records, nil
}

// Append stores record under name. The existing table is loaded, merged and
// rewritten in full, so a repeated name replaces its earlier record instead
// of leaving a second fragment behind.
func (s *Store) Append(name string, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadConfigLocked()
	if err != nil {
		return err
	}
	records[name] = record
	return s.writeConfigLocked(records)
}

// Remove deletes name from venvs.toml and rewrites the whole table.
// Removing a name that has no record still rewrites the file.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadConfigLocked()
	if err != nil {
		return err
	}
	delete(records, name)
	return s.writeConfigLocked(records)
}

// Lookup returns the record for name, if present.
func (s *Store) Lookup(name string) (Record, bool, error) {
	records, err := s.LoadConfig()
	if err != nil {
		return Record{}, false, err
	}
	rec, ok := records[name]
	return rec, ok, nil
}

// ListAll pairs every scanned environment directory with its record, in
// directory-scan order. Records without a directory are not returned.
func (s *Store) ListAll() ([]Entry, error) {
	names, err := s.Scan()
	if err != nil {
		return nil, err
	}
	records, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		e := Entry{Name: name, Path: s.EnvPath(name)}
		if rec, ok := records[name]; ok {
			e.Configured = true
			e.Record = &rec
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// writeConfigLocked serializes records and replaces venvs.toml via a temp
// file in the same directory.
func (s *Store) writeConfigLocked(records map[string]Record) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("creating registry root: %w", err)
	}

	data, err := toml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	tmp, err := os.CreateTemp(s.dataDir, ".venvs-*.toml")
	if err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing configuration: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	if err := os.Rename(tmpPath, s.ConfigPath()); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}
