package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"minifeed/internal/kvstore"
	"minifeed/internal/repository"
)

// SnapshotVersion identifies the snapshot file format
const SnapshotVersion = "1.0"

// Snapshot represents the complete persisted state as a portable document.
// Values are carried verbatim, so a snapshot round-trips byte-for-byte.
type Snapshot struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Entries    map[string]string `json:"entries"`
}

// SnapshotService exports and imports the full key-value state
type SnapshotService struct {
	kv kvstore.Store
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(kv kvstore.Store) *SnapshotService {
	return &SnapshotService{kv: kv}
}

// Export collects every persisted key into a Snapshot
func (s *SnapshotService) Export() (*Snapshot, error) {
	snapshot := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now(),
		Entries:    make(map[string]string),
	}

	for _, key := range repository.Keys() {
		value, ok, err := s.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("failed to export key %s: %w", key, err)
		}
		if ok {
			snapshot.Entries[key] = value
		}
	}

	return snapshot, nil
}

// ExportToFile writes a snapshot to the given path. The file is written to
// a temp sibling first and renamed into place.
func (s *SnapshotService) ExportToFile(path string) error {
	snapshot, err := s.Export()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	return nil
}

// Import restores a snapshot's entries into the store. With clear set,
// keys absent from the snapshot are deleted first.
func (s *SnapshotService) Import(snapshot *Snapshot, clear bool) error {
	if snapshot.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version: %s", snapshot.Version)
	}

	if clear {
		for _, key := range repository.Keys() {
			if _, ok := snapshot.Entries[key]; ok {
				continue
			}
			if err := s.kv.Delete(key); err != nil {
				return fmt.Errorf("failed to clear key %s: %w", key, err)
			}
		}
	}

	for key, value := range snapshot.Entries {
		if err := s.kv.Set(key, value); err != nil {
			return fmt.Errorf("failed to import key %s: %w", key, err)
		}
	}

	return nil
}

// ImportFromFile reads a snapshot file and restores it into the store
func (s *SnapshotService) ImportFromFile(path string, clear bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to decode snapshot file: %w", err)
	}

	return s.Import(&snapshot, clear)
}
