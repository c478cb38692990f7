package store

import (
	"errors"
	"testing"
	"time"

	"github.com/benvon/zen-planner/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *MemoryPersistence) {
	t.Helper()
	p := NewMemoryPersistence()
	s := New(p, WithClock(func() time.Time { return testNow }))
	if err := s.Hydrate(); err != nil {
		t.Fatalf("Hydrate() error: %v", err)
	}
	return s, p
}

type failingPersistence struct{}

func (failingPersistence) Save(*Snapshot) error { return errors.New("disk full") }
func (failingPersistence) Load() (*Snapshot, error) { return nil, errors.New("corrupt") }

func TestHydrateFreshStore(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	if !s.HasHydrated() {
		t.Fatal("store should be hydrated")
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("fresh store has %d tasks, want 0", len(s.Tasks()))
	}
	cats := s.Categories()
	if len(cats) != 5 {
		t.Fatalf("fresh store has %d categories, want 5 defaults", len(cats))
	}
	if cats[0].ID != "personal" || cats[4].ID != "other" {
		t.Errorf("default categories out of order: %v", cats)
	}
	if s.Subscription() != models.TierFree {
		t.Errorf("Subscription = %q, want free", s.Subscription())
	}
	if s.ActiveTab() != "tasks" {
		t.Errorf("ActiveTab = %q, want tasks", s.ActiveTab())
	}
	if s.SelectedDate() != testNow.Format(models.DateLayout) {
		t.Errorf("SelectedDate = %q, want today", s.SelectedDate())
	}
}

func TestHydrateLoadsSnapshot(t *testing.T) {
	t.Parallel()

	p := NewMemoryPersistence()
	first := New(p, WithClock(func() time.Time { return testNow }))
	if err := first.Hydrate(); err != nil {
		t.Fatalf("Hydrate() error: %v", err)
	}
	first.AddTask(models.TaskInput{Title: "persisted", Priority: models.PriorityHigh})
	first.SetSubscription(models.TierPro)

	second := New(p, WithClock(func() time.Time { return testNow }))
	if err := second.Hydrate(); err != nil {
		t.Fatalf("Hydrate() error: %v", err)
	}
	tasks := second.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "persisted" {
		t.Fatalf("second store tasks = %+v, want the persisted task", tasks)
	}
	if second.Subscription() != models.TierPro {
		t.Errorf("Subscription = %q, want pro", second.Subscription())
	}
}

func TestHydrateFailureLeavesStoreUnhydrated(t *testing.T) {
	t.Parallel()

	s := New(failingPersistence{})
	if err := s.Hydrate(); err == nil {
		t.Fatal("Hydrate() should fail when the snapshot is unreadable")
	}
	if s.HasHydrated() {
		t.Error("store must not report hydrated after a failed load")
	}
}

func TestMutationsBeforeHydrationAreQueued(t *testing.T) {
	t.Parallel()

	p := NewMemoryPersistence()
	s := New(p, WithClock(func() time.Time { return testNow }))

	s.AddTask(models.TaskInput{Title: "first", Priority: models.PriorityLow})
	s.AddTask(models.TaskInput{Title: "second", Priority: models.PriorityLow})
	if len(s.Tasks()) != 0 {
		t.Fatal("queued mutations must not be visible before hydration")
	}

	if err := s.Hydrate(); err != nil {
		t.Fatalf("Hydrate() error: %v", err)
	}
	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2 after replay", len(tasks))
	}
	if tasks[0].Title != "first" || tasks[1].Title != "second" {
		t.Errorf("replay out of order: %q, %q", tasks[0].Title, tasks[1].Title)
	}
	if p.Saves() == 0 {
		t.Error("replayed mutations should be persisted")
	}
	if s.Revision() != 2 {
		t.Errorf("Revision() = %d, want 2 after replay", s.Revision())
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	p := NewMemoryPersistence()
	s := New(p)
	if err := s.Hydrate(); err != nil {
		t.Fatalf("Hydrate() error: %v", err)
	}
	s.persistence = failingPersistence{}

	s.AddTask(models.TaskInput{Title: "kept in memory", Priority: models.PriorityLow})
	if len(s.Tasks()) != 1 {
		t.Error("in-memory state must stay authoritative when saves fail")
	}
}

func TestUISettersDoNotPersist(t *testing.T) {
	t.Parallel()

	s, p := newTestStore(t)
	before := p.Saves()

	s.SetActiveTab("calendar")
	s.SetSelectedDate("2025-07-01")

	if s.ActiveTab() != "calendar" || s.SelectedDate() != "2025-07-01" {
		t.Error("UI setters should update state")
	}
	if p.Saves() != before {
		t.Errorf("UI setters triggered %d saves", p.Saves()-before)
	}
	if s.Revision() != 0 {
		t.Errorf("Revision() = %d, UI setters must not count as mutations", s.Revision())
	}
}

func TestSnapshotExcludesUIState(t *testing.T) {
	t.Parallel()

	s, p := newTestStore(t)
	s.SetActiveTab("habits")
	s.AddTask(models.TaskInput{Title: "t", Priority: models.PriorityLow})

	snap, err := p.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Tasks) != 1 {
		t.Errorf("snapshot tasks = %d, want 1", len(snap.Tasks))
	}

	fresh := New(NewMemoryPersistence())
	if err := fresh.Hydrate(); err != nil {
		t.Fatalf("Hydrate() error: %v", err)
	}
	if fresh.ActiveTab() != "tasks" {
		t.Error("active tab should reset to the default, not follow the snapshot")
	}
}
