// Package persistence saves the run snapshot between sessions.
package persistence

import (
	"encoding/json"
	"log"

	"github.com/automoto/glitchfire/systems"
	"github.com/quasilyte/gdata"
)

const snapshotKey = "snapshot"

// ItemStore is the subset of *gdata.Manager the store needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes the snapshot. A Store without a backend is a no-op.
type Store struct {
	items ItemStore
}

// Open initializes the gdata manager for appName. On failure the returned Store
// still works but never persists anything.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return &Store{}, err
	}
	return &Store{items: m}, nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// Save writes the snapshot
func (s *Store) Save(snap systems.Snapshot) bool {
	if s.items == nil {
		return false
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Warning: Could not serialize snapshot: %v", err)
		return false
	}

	if err := s.items.SaveItem(snapshotKey, data); err != nil {
		log.Printf("Warning: Could not save snapshot: %v", err)
		return false
	}
	return true
}

// Load returns the saved snapshot, if any
func (s *Store) Load() (systems.Snapshot, bool) {
	if s.items == nil {
		return systems.Snapshot{}, false
	}

	data, err := s.items.LoadItem(snapshotKey)
	if err != nil {
		log.Printf("Warning: Could not load snapshot: %v", err)
		return systems.Snapshot{}, false
	}
	if len(data) == 0 {
		return systems.Snapshot{}, false
	}

	var snap systems.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Warning: Could not parse saved snapshot: %v", err)
		return systems.Snapshot{}, false
	}
	return snap, true
}

// Clear removes any saved snapshot
func (s *Store) Clear() bool {
	if s.items == nil {
		return false
	}

	// Save empty data to clear the snapshot
	if err := s.items.SaveItem(snapshotKey, nil); err != nil {
		log.Printf("Warning: Could not clear snapshot: %v", err)
		return false
	}
	return true
}
