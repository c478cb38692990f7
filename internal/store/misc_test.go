package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/models"
)

func TestChatTranscript(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.AddChatMessage(models.ChatMessageInput{Role: models.ChatRoleUser, Content: "hello"})
	s.AddChatMessage(models.ChatMessageInput{Role: models.ChatRoleAssistant, Content: "hi"})

	messages := s.ChatMessages()
	if len(messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(messages))
	}
	if messages[0].Role != models.ChatRoleUser || messages[1].Role != models.ChatRoleAssistant {
		t.Error("messages should keep append order")
	}
	if !messages[0].Timestamp.Equal(testNow) {
		t.Error("timestamps should come from the store clock")
	}

	s.ClearChat()
	if len(s.ChatMessages()) != 0 {
		t.Error("ClearChat should empty the transcript")
	}
}

func TestAddCategory(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.AddCategory(models.CategoryInput{Name: "Side projects", Color: "#123456"})

	cats := s.Categories()
	if len(cats) != 6 {
		t.Fatalf("len(categories) = %d, want 5 defaults + 1", len(cats))
	}
	added := cats[5]
	if added.Name != "Side projects" || added.ID == "" {
		t.Errorf("added category = %+v", added)
	}
}

func TestReminders(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	taskID := uuid.New()
	fireAt := time.Date(2025, 6, 15, 8, 30, 0, 0, time.Local)

	s.AddReminder(models.ReminderInput{
		TaskID:     taskID,
		TaskTitle:  "standup",
		DueDate:    "2025-06-15",
		DueTime:    "09:00",
		ReminderAt: fireAt,
	})

	reminders := s.Reminders()
	if len(reminders) != 1 {
		t.Fatalf("len(reminders) = %d, want 1", len(reminders))
	}
	r := reminders[0]
	if r.IsNotified {
		t.Error("new reminder must start un-notified")
	}
	if r.TaskTitle != "standup" || !r.ReminderAt.Equal(fireAt) {
		t.Errorf("reminder = %+v", r)
	}

	s.DismissReminder(r.ID)
	if len(s.Reminders()) != 0 {
		t.Error("dismissed reminder should be gone")
	}
}

func TestSetSubscription(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.SetSubscription(models.TierEnterprise)
	if s.Subscription() != models.TierEnterprise {
		t.Errorf("Subscription = %q, want enterprise", s.Subscription())
	}
}
