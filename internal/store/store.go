// Package store holds the normalized entity collections and exposes the
// mutation operations that keep their derived fields consistent. All
// durable state lives here; the persistence port is a passive mirror
// written on every mutation.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/benvon/zen-planner/internal/models"
)

// Store is the application state engine. It is safe for concurrent use;
// every mutation runs to completion under the lock before any read can
// observe intermediate state.
type Store struct {
	mu sync.RWMutex

	tasks        []models.Task
	goals        []models.Goal
	habits       []models.Habit
	categories   []models.Category
	chatMessages []models.ChatMessage
	reminders    []models.Reminder
	subscription models.SubscriptionTier

	activeTab    string
	selectedDate string

	hydrated bool
	pending  []func()
	revision uint64

	persistence Persistence
	logger      *zap.Logger
	now         func() time.Time
	newID       func() uuid.UUID
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock overrides the store's clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id assignment, for deterministic tests.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a store backed by the given persistence port. The store
// starts unhydrated: call Hydrate before treating reads as
// authoritative. Mutations issued before hydration are queued and
// replayed, in order, once hydration completes.
func New(p Persistence, opts ...Option) *Store {
	s := &Store{
		categories:   models.DefaultCategories(),
		subscription: models.TierFree,
		activeTab:    "tasks",
		persistence:  p,
		logger:       zap.NewNop(),
		now:          time.Now,
		newID:        uuid.New,
	}
	s.selectedDate = s.now().Format(models.DateLayout)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate loads the persisted snapshot and marks the store hydrated.
// A missing snapshot is a successful empty hydration; a corrupt or
// unreadable one is an error and leaves the store unhydrated. Queued
// mutations are replayed in order after a successful load. Hydrating an
// already-hydrated store is a no-op.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return nil
	}

	snapshot, err := s.persistence.Load()
	switch {
	case err == nil:
		s.tasks = snapshot.Tasks
		s.goals = snapshot.Goals
		s.habits = snapshot.Habits
		s.chatMessages = snapshot.ChatMessages
		s.reminders = snapshot.Reminders
		if len(snapshot.Categories) > 0 {
			s.categories = snapshot.Categories
		}
		if snapshot.Subscription != "" {
			s.subscription = snapshot.Subscription
		}
	case err == ErrNoSnapshot:
		// Fresh store, keep the seeded defaults.
	default:
		return fmt.Errorf("store: hydrate: %w", err)
	}

	s.hydrated = true

	if len(s.pending) > 0 {
		s.logger.Info("store_replaying_queued_mutations", zap.Int("count", len(s.pending)))
		for _, fn := range s.pending {
			fn()
			s.revision++
		}
		s.pending = nil
		s.persist()
	}
	return nil
}

// HasHydrated reports whether hydration has completed. Readers must not
// treat the collections as authoritative before this returns true.
func (s *Store) HasHydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Revision returns the number of mutations applied since hydration.
// Change notification loops can poll it to skip no-op refreshes.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// mutate applies fn under the write lock and mirrors the persisted
// subset to durable storage. Before hydration fn is queued instead, so
// early mutations are never lost.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hydrated {
		s.pending = append(s.pending, fn)
		return
	}
	fn()
	s.revision++
	s.persist()
}

// setUI applies a UI-only scalar assignment. UI state is excluded from
// the persisted subset, so no save is triggered.
func (s *Store) setUI(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// persist writes the persisted subset. Callers hold the write lock.
// Save failures are logged, never fatal: in-memory state stays
// authoritative.
func (s *Store) persist() {
	if err := s.persistence.Save(s.snapshotLocked()); err != nil {
		s.logger.Error("store_save_failed", zap.Error(err))
	}
}

func (s *Store) snapshotLocked() *Snapshot {
	return &Snapshot{
		Tasks:        append([]models.Task(nil), s.tasks...),
		Goals:        append([]models.Goal(nil), s.goals...),
		Habits:       append([]models.Habit(nil), s.habits...),
		Categories:   append([]models.Category(nil), s.categories...),
		ChatMessages: append([]models.ChatMessage(nil), s.chatMessages...),
		Reminders:    append([]models.Reminder(nil), s.reminders...),
		Subscription: s.subscription,
	}
}

// Snapshot returns a copy of the persisted subset of current state.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Tasks returns a copy of the task collection.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

// Goals returns a copy of the goal collection.
func (s *Store) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Goal(nil), s.goals...)
}

// Habits returns a copy of the habit collection.
func (s *Store) Habits() []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Habit(nil), s.habits...)
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// ChatMessages returns a copy of the chat transcript.
func (s *Store) ChatMessages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ChatMessage(nil), s.chatMessages...)
}

// Reminders returns a copy of the reminder collection.
func (s *Store) Reminders() []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Reminder(nil), s.reminders...)
}

// Subscription returns the current subscription tier.
func (s *Store) Subscription() models.SubscriptionTier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subscription
}

// ActiveTab returns the UI's active tab.
func (s *Store) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// SelectedDate returns the UI's selected calendar date.
func (s *Store) SelectedDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// SetActiveTab sets the UI's active tab.
func (s *Store) SetActiveTab(tab string) {
	s.setUI(func() { s.activeTab = tab })
}

// SetSelectedDate sets the UI's selected calendar date.
func (s *Store) SetSelectedDate(date string) {
	s.setUI(func() { s.selectedDate = date })
}
