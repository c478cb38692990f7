package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in the advisor chat transcript
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessageInput is the creation payload for a chat message
type ChatMessageInput struct {
	Role    ChatRole `json:"role" validate:"chat_role"`
	Content string   `json:"content" validate:"required"`
}
