package store

import (
	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/models"
)

// AddCategory creates a category from the input with a fresh id.
func (s *Store) AddCategory(input models.CategoryInput) {
	s.mutate(func() {
		s.categories = append(s.categories, models.Category{
			ID:    models.NewCategoryID(),
			Name:  input.Name,
			Color: input.Color,
			Icon:  input.Icon,
		})
	})
}

// AddChatMessage appends a message to the chat transcript with a fresh
// id and the current timestamp.
func (s *Store) AddChatMessage(input models.ChatMessageInput) {
	s.mutate(func() {
		s.chatMessages = append(s.chatMessages, models.ChatMessage{
			ID:        s.newID(),
			Role:      input.Role,
			Content:   input.Content,
			Timestamp: s.now(),
		})
	})
}

// ClearChat empties the chat transcript.
func (s *Store) ClearChat() {
	s.mutate(func() {
		s.chatMessages = []models.ChatMessage{}
	})
}

// AddReminder creates a reminder from the input with a fresh id and
// isNotified unset.
func (s *Store) AddReminder(input models.ReminderInput) {
	s.mutate(func() {
		s.reminders = append(s.reminders, models.Reminder{
			ID:         s.newID(),
			TaskID:     input.TaskID,
			TaskTitle:  input.TaskTitle,
			DueDate:    input.DueDate,
			DueTime:    input.DueTime,
			ReminderAt: input.ReminderAt,
		})
	})
}

// DismissReminder removes the matching reminder. Unknown ids are a
// silent no-op.
func (s *Store) DismissReminder(id uuid.UUID) {
	s.mutate(func() {
		for i := range s.reminders {
			if s.reminders[i].ID == id {
				s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
				return
			}
		}
	})
}

// SetSubscription overwrites the subscription tier unconditionally.
// Payment validation happens elsewhere, if at all.
func (s *Store) SetSubscription(tier models.SubscriptionTier) {
	s.mutate(func() {
		s.subscription = tier
	})
}
