package ai

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/store"
)

// MaxMessageLength is the longest chat message the advisor accepts.
const MaxMessageLength = 2000

// FallbackReply is appended to the transcript when the completion
// service fails, so the chat surface never breaks.
const FallbackReply = "Sorry, I couldn't process your request right now. Please try again."

var (
	// ErrEmptyMessage is returned for blank chat messages.
	ErrEmptyMessage = errors.New("advisor: message is required")
	// ErrMessageTooLong is returned for messages over MaxMessageLength.
	ErrMessageTooLong = errors.New("advisor: message is too long")
	// ErrSuperseded is returned when a newer request was issued while
	// this one was in flight; its reply is discarded, not appended.
	ErrSuperseded = errors.New("advisor: request superseded")
)

// AdvisorSession drives the chat flow against the store: it appends the
// user message, asks the completion service, and appends exactly one
// assistant message per surviving request. Each request carries an id
// and only the most recently issued request may append its reply, so
// rapid re-asks cannot interleave stale assistant messages into the
// transcript.
type AdvisorSession struct {
	store    *store.Store
	provider Provider
	logger   *zap.Logger

	mu     sync.Mutex
	latest uuid.UUID
}

// NewAdvisorSession creates an advisor session over the given store.
func NewAdvisorSession(st *store.Store, provider Provider, logger *zap.Logger) *AdvisorSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorSession{store: st, provider: provider, logger: logger}
}

// Ask sends a chat message and returns the assistant reply. The user
// message is appended immediately; the reply is appended on arrival
// unless a newer Ask superseded this one. Upstream failures append the
// fallback reply instead of surfacing an error.
func (s *AdvisorSession) Ask(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}
	if len(message) > MaxMessageLength {
		return "", ErrMessageTooLong
	}

	requestID := uuid.New()
	s.mu.Lock()
	s.latest = requestID
	s.mu.Unlock()

	s.store.AddChatMessage(models.ChatMessageInput{
		Role:    models.ChatRoleUser,
		Content: message,
	})

	ec := NewEntityContext(s.store.Tasks(), s.store.Goals(), s.store.Habits())
	reply, err := s.provider.Complete(ctx, CompletionRequest{
		System:      ChatSystemPrompt(BuildContextSummary(ec)),
		User:        message,
		Temperature: 0.7,
		MaxTokens:   500,
	})

	s.mu.Lock()
	stale := s.latest != requestID
	s.mu.Unlock()
	if stale {
		s.logger.Debug("advisor_reply_discarded", zap.String("request_id", requestID.String()))
		return "", ErrSuperseded
	}

	if err != nil {
		s.logger.Warn("advisor_completion_failed", zap.Error(err))
		reply = FallbackReply
	}

	s.store.AddChatMessage(models.ChatMessageInput{
		Role:    models.ChatRoleAssistant,
		Content: reply,
	})
	return reply, nil
}
