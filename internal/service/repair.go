package service

import (
	"fmt"
	"sort"

	"github.com/venman-dev/venman/internal/localstore"
)

// RepairReport describes where the configuration and the directories disagree.
type RepairReport struct {
	Stale        []string            // records without a directory
	Unconfigured []string            // directories without a record
	Pending      []localstore.Intent // interrupted create/delete operations
}

// HasChanges reports whether Repair would modify anything.
func (r *RepairReport) HasChanges() bool {
	return len(r.Stale) > 0 || len(r.Pending) > 0
}

// Inspect compares the configuration with the environments directory.
func (s *RegistryService) Inspect() (*RepairReport, error) {
	records, err := s.store.LoadConfig()
	if err != nil {
		return nil, err
	}

	onDisk := make(map[string]bool)
	if s.store.EnvsDirExists() {
		names, err := s.store.Scan()
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			onDisk[name] = true
		}
	}

	report := &RepairReport{}
	for name := range records {
		if !onDisk[name] {
			report.Stale = append(report.Stale, name)
		}
	}
	for name := range onDisk {
		if _, ok := records[name]; !ok {
			report.Unconfigured = append(report.Unconfigured, name)
		}
	}
	sort.Strings(report.Stale)
	sort.Strings(report.Unconfigured)

	report.Pending, err = s.store.PendingIntents()
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Repair removes stale records and clears pending intents. Unconfigured
// directories are legal and left alone.
func (s *RegistryService) Repair(report *RepairReport) error {
	for _, name := range report.Stale {
		if err := s.store.Remove(name); err != nil {
			return fmt.Errorf("removing stale entry %q: %w", name, err)
		}
	}
	for _, intent := range report.Pending {
		if err := s.store.ClearIntent(intent.ID); err != nil {
			return err
		}
	}
	return nil
}
