// Package handlers implements the HTTP surface of the AI gateway: the
// advisor chat relay, the productivity analysis relay, and the health
// probes. Both relay endpoints are rate limited per client IP and never
// forward raw entity collections upstream beyond the bounded context
// projection.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/benvon/zen-planner/internal/logger"
	"github.com/benvon/zen-planner/internal/services/ai"
)

// errorResponse is the shared error envelope for all gateway endpoints.
type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("response_encode_failed", zap.String("error", logger.SanitizeError(err)))
	}
}

func respondError(w http.ResponseWriter, log *zap.Logger, status int, message string) {
	writeJSON(w, log, status, errorResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// entityContextPayload holds the raw context collections from the
// request body. Each field is decoded independently so a malformed or
// mistyped collection degrades to empty instead of failing the request.
type entityContextPayload struct {
	Tasks  json.RawMessage `json:"tasks"`
	Goals  json.RawMessage `json:"goals"`
	Habits json.RawMessage `json:"habits"`
}

func (p entityContextPayload) toEntityContext() ai.EntityContext {
	var ec ai.EntityContext
	if len(p.Tasks) > 0 {
		if err := json.Unmarshal(p.Tasks, &ec.Tasks); err != nil {
			ec.Tasks = nil
		}
	}
	if len(p.Goals) > 0 {
		if err := json.Unmarshal(p.Goals, &ec.Goals); err != nil {
			ec.Goals = nil
		}
	}
	if len(p.Habits) > 0 {
		if err := json.Unmarshal(p.Habits, &ec.Habits); err != nil {
			ec.Habits = nil
		}
	}
	return ec
}
