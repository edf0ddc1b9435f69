package store

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/lpsim/lifeplan-simulator/internal/calculation"
	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

// snapshot is the persisted form of the store: input records and timeline.
// The ledger is derived state and is rebuilt on load.
type snapshot struct {
	Version    int                `json:"version"`
	Input      calculation.Input  `json:"input"`
	LifeEvents []domain.LifeEvent `json:"life_events,omitempty"`
}

const snapshotVersion = 1

// Save writes the current state as JSON.
func (s *Store) Save(w io.Writer) error {
	s.mu.RLock()
	snap := snapshot{
		Version:    snapshotVersion,
		Input:      s.input,
		LifeEvents: s.events,
	}
	s.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// SaveFile writes the current state to a JSON file.
func (s *Store) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()
	return s.Save(f)
}

// Restore replaces the state from a JSON snapshot. The replacement is
// all-or-nothing: a malformed snapshot leaves the current state untouched.
func (s *Store) Restore(r io.Reader) error {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if snap.Input.Profile == nil {
		return fmt.Errorf("snapshot has no profile")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = snap.Input
	s.events = snap.LifeEvents
	s.recompute()
	return nil
}

// RestoreFile replaces the state from a JSON snapshot file.
func (s *Store) RestoreFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()
	return s.Restore(f)
}
