package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Operation names recorded in the journal.
const (
	OpCreate = "create"
	OpDelete = "delete"
)

// Intent marks a two-step registry mutation (directory + configuration) that
// has started but not finished. A leftover intent means the process died or
// the second step failed, and the pair may disagree.
type Intent struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
}

// JournalDir returns the directory holding pending intents.
func (s *Store) JournalDir() string {
	return filepath.Join(s.dataDir, ".journal")
}

// BeginIntent writes an intent marker for op on name.
func (s *Store) BeginIntent(op, name string) (*Intent, error) {
	intent := &Intent{
		ID:        uuid.New().String(),
		Op:        op,
		Name:      name,
		StartedAt: time.Now().UTC(),
	}

	if err := os.MkdirAll(s.JournalDir(), 0755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	data, err := json.MarshalIndent(intent, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling intent: %w", err)
	}
	if err := os.WriteFile(s.intentPath(intent.ID), data, 0644); err != nil {
		return nil, fmt.Errorf("writing intent: %w", err)
	}
	return intent, nil
}

// ClearIntent removes a finished intent. Clearing a missing intent is not an error.
func (s *Store) ClearIntent(id string) error {
	if err := os.Remove(s.intentPath(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing intent: %w", err)
	}
	return nil
}

// PendingIntents returns unfinished intents, oldest first. Unparseable
// markers are skipped.
func (s *Store) PendingIntents() ([]Intent, error) {
	entries, err := os.ReadDir(s.JournalDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading journal: %w", err)
	}

	var intents []Intent
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.JournalDir(), e.Name()))
		if err != nil {
			continue
		}
		var intent Intent
		if err := json.Unmarshal(data, &intent); err != nil || intent.ID == "" {
			continue
		}
		intents = append(intents, intent)
	}

	sort.Slice(intents, func(i, j int) bool {
		return intents[i].StartedAt.Before(intents[j].StartedAt)
	})
	return intents, nil
}

func (s *Store) intentPath(id string) string {
	return filepath.Join(s.JournalDir(), id+".json")
}
