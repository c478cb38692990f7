package store

import (
	"errors"

	"github.com/benvon/zen-planner/internal/models"
)

// ErrNoSnapshot is returned by Persistence.Load when no prior state
// exists. The store treats it as a successful empty hydration.
var ErrNoSnapshot = errors.New("store: no snapshot")

// Snapshot is the persisted subset of store state. UI-only fields
// (active tab, selected date) are deliberately excluded.
type Snapshot struct {
	Tasks        []models.Task           `json:"tasks"`
	Goals        []models.Goal           `json:"goals"`
	Habits       []models.Habit          `json:"habits"`
	Categories   []models.Category       `json:"categories"`
	ChatMessages []models.ChatMessage    `json:"chatMessages"`
	Reminders    []models.Reminder       `json:"reminders"`
	Subscription models.SubscriptionTier `json:"subscription"`
}

// Persistence is the durable-storage port. The store owns the state;
// implementations are passive mirrors written wholesale on every
// mutation and read once at hydration.
type Persistence interface {
	Save(snapshot *Snapshot) error
	Load() (*Snapshot, error)
}

// MemoryPersistence is an in-process Persistence used in tests and as a
// no-op mirror. It keeps the last saved snapshot.
type MemoryPersistence struct {
	snapshot *Snapshot
	saves    int
}

// NewMemoryPersistence creates an empty in-memory persistence port.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{}
}

// Save stores the snapshot.
func (m *MemoryPersistence) Save(snapshot *Snapshot) error {
	m.snapshot = snapshot
	m.saves++
	return nil
}

// Load returns the last saved snapshot, or ErrNoSnapshot if none exists.
func (m *MemoryPersistence) Load() (*Snapshot, error) {
	if m.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return m.snapshot, nil
}

// Saves reports how many times Save has been called.
func (m *MemoryPersistence) Saves() int {
	return m.saves
}
