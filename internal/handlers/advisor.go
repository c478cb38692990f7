package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/benvon/zen-planner/internal/logger"
	"github.com/benvon/zen-planner/internal/middleware"
	"github.com/benvon/zen-planner/internal/services/ai"
)

// AdvisorHandler relays chat messages to the completion service along
// with a bounded summary of the caller's tasks, goals and habits.
type AdvisorHandler struct {
	provider ai.Provider
	limiter  *middleware.RateLimiter
	logger   *zap.Logger
}

// NewAdvisorHandler creates the advisor chat handler.
func NewAdvisorHandler(provider ai.Provider, limiter *middleware.RateLimiter, log *zap.Logger) *AdvisorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdvisorHandler{provider: provider, limiter: limiter, logger: log}
}

// RegisterRoutes registers the advisor endpoint on the given router.
func (h *AdvisorHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/ai-advisor", h.Chat).Methods("POST")
}

type chatRequest struct {
	Message string               `json:"message"`
	Context entityContextPayload `json:"context"`
}

type chatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// Chat handles POST /api/ai-advisor.
func (h *AdvisorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	key := middleware.RateLimitKey(r)
	result, err := h.limiter.Check(r.Context(), key)
	if err != nil {
		h.logger.Error("rate_limit_check_failed", zap.String("error", logger.SanitizeError(err)))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to get response")
		return
	}
	middleware.SetRateLimitHeaders(w, result)
	if !result.Allowed {
		h.logger.Warn("chat_rate_limited", zap.String("key", logger.SanitizeString(key, 64)))
		respondError(w, h.logger, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Message == "" {
		respondError(w, h.logger, http.StatusBadRequest, "Message is required")
		return
	}
	if len(req.Message) > ai.MaxMessageLength {
		respondError(w, h.logger, http.StatusBadRequest,
			fmt.Sprintf("Message is too long (max %d characters)", ai.MaxMessageLength))
		return
	}

	if h.provider == nil {
		respondError(w, h.logger, http.StatusInternalServerError, "AI service is not configured")
		return
	}

	ec := req.Context.toEntityContext()
	reply, err := h.provider.Complete(r.Context(), ai.CompletionRequest{
		System:      ai.ChatSystemPrompt(ai.BuildContextSummary(ec)),
		User:        req.Message,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		h.logger.Warn("chat_completion_failed", zap.String("error", logger.SanitizeError(err)))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to get response")
		return
	}
	if reply == "" {
		reply = "Sorry, no response."
	}

	writeJSON(w, h.logger, http.StatusOK, chatResponse{
		Success:   true,
		Response:  reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
