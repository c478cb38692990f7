package models

import "github.com/google/uuid"

// Category groups tasks for filtering and display
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// CategoryInput is the creation payload for a category
type CategoryInput struct {
	Name  string `json:"name" validate:"required,min=1"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// DefaultCategoryOther is the id of the fallback category that tasks are
// reassigned to when their category disappears.
const DefaultCategoryOther = "other"

// DefaultCategories returns the five categories seeded into a fresh store.
func DefaultCategories() []Category {
	return []Category{
		{ID: "personal", Name: "Personal", Color: "#8b5cf6"},
		{ID: "work", Name: "Work", Color: "#3b82f6"},
		{ID: "health", Name: "Health", Color: "#22c55e"},
		{ID: "learning", Name: "Learning", Color: "#f59e0b"},
		{ID: DefaultCategoryOther, Name: "Other", Color: "#6b7280"},
	}
}

// NewCategoryID generates an id for a user-created category.
func NewCategoryID() string {
	return uuid.NewString()
}
