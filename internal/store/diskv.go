package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// StorageKey is the fixed namespace the persisted blob lives under,
// mirroring the client's local-storage key.
const StorageKey = "zen-planner-storage"

// DiskvPersistence persists the snapshot as a single JSON blob in a
// diskv key-value store rooted at a base directory.
type DiskvPersistence struct {
	d *diskv.Diskv
}

// NewDiskvPersistence creates a diskv-backed persistence port rooted at
// basePath, creating the directory if needed.
func NewDiskvPersistence(basePath string) (*DiskvPersistence, error) {
	if basePath == "" {
		return nil, fmt.Errorf("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvPersistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// Save serializes the snapshot wholesale under the storage key.
func (p *DiskvPersistence) Save(snapshot *Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	if err := p.d.Write(StorageKey, data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}

// Load reads and deserializes the snapshot, or ErrNoSnapshot when the
// key has never been written.
func (p *DiskvPersistence) Load() (*Snapshot, error) {
	if !p.d.Has(StorageKey) {
		return nil, ErrNoSnapshot
	}
	data, err := p.d.Read(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("store: unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}
