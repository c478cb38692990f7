package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/benvon/zen-planner/internal/logger"
	"github.com/benvon/zen-planner/internal/middleware"
	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/services/ai"
	"github.com/benvon/zen-planner/internal/stats"
)

// AnalyzeHandler computes productivity statistics locally and relays
// only the aggregates upstream for insight generation. Entity titles
// and ids never appear in the analysis prompt.
type AnalyzeHandler struct {
	provider ai.Provider
	limiter  *middleware.RateLimiter
	logger   *zap.Logger
	now      func() time.Time
}

// NewAnalyzeHandler creates the analysis handler.
func NewAnalyzeHandler(provider ai.Provider, limiter *middleware.RateLimiter, log *zap.Logger) *AnalyzeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyzeHandler{provider: provider, limiter: limiter, logger: log, now: time.Now}
}

// RegisterRoutes registers the analysis endpoint on the given router.
func (h *AnalyzeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/analyze", h.Analyze).Methods("POST")
}

type analyzeRequest struct {
	Tasks  json.RawMessage `json:"tasks"`
	Goals  json.RawMessage `json:"goals"`
	Habits json.RawMessage `json:"habits"`
}

// analysisStats is the combined statistics block echoed back to the
// caller alongside the generated insights.
type analysisStats struct {
	TotalTasks           int                     `json:"totalTasks"`
	CompletedTasks       int                     `json:"completedTasks"`
	PendingTasks         int                     `json:"pendingTasks"`
	OverdueTasks         int                     `json:"overdueTasks"`
	CompletionRate       int                     `json:"completionRate"`
	PriorityDistribution map[models.Priority]int `json:"priorityDistribution"`
	CategoryDistribution map[string]int          `json:"categoryDistribution"`
	TotalGoals           int                     `json:"totalGoals"`
	AvgGoalProgress      int                     `json:"avgGoalProgress"`
	TotalHabits          int                     `json:"totalHabits"`
	AvgStreak            int                     `json:"avgStreak"`
	ActiveStreaks        int                     `json:"activeStreaks"`
}

type analysisPayload struct {
	Stats             analysisStats `json:"stats"`
	ProductivityScore int           `json:"productivityScore"`
	Insights          []ai.Insight  `json:"insights"`
	Recommendations   []string      `json:"recommendations"`
}

type analyzeResponse struct {
	Success   bool            `json:"success"`
	Analysis  analysisPayload `json:"analysis"`
	Timestamp string          `json:"timestamp"`
}

// Analyze handles POST /api/analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	key := middleware.RateLimitKey(r)
	result, err := h.limiter.Check(r.Context(), key)
	if err != nil {
		h.logger.Error("rate_limit_check_failed", zap.String("error", logger.SanitizeError(err)))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to analyze data")
		return
	}
	middleware.SetRateLimitHeaders(w, result)
	if !result.Allowed {
		h.logger.Warn("analyze_rate_limited", zap.String("key", logger.SanitizeString(key, 64)))
		respondError(w, h.logger, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if h.provider == nil {
		respondError(w, h.logger, http.StatusInternalServerError, "AI service is not configured")
		return
	}

	ec := entityContextPayload{Tasks: req.Tasks, Goals: req.Goals, Habits: req.Habits}.toEntityContext()

	taskStats := stats.ComputeTaskStats(ec.ToTasks(), h.now())
	goalStats := stats.ComputeGoalStats(ec.ToGoals())
	habitStats := stats.ComputeHabitStats(ec.ToHabits())

	var analysis ai.Analysis
	reply, err := h.provider.Complete(r.Context(), ai.CompletionRequest{
		System:      ai.AnalysisSystemPrompt(),
		User:        ai.BuildAnalysisPrompt(taskStats, goalStats, habitStats),
		Temperature: 0.5,
		MaxTokens:   1000,
	})
	if err != nil {
		// Analysis degrades to the local fallback rather than failing.
		h.logger.Warn("analysis_completion_failed", zap.String("error", logger.SanitizeError(err)))
		analysis = ai.DefaultAnalysis(taskStats.CompletionRate)
	} else {
		analysis = ai.ParseAnalysis(reply, taskStats.CompletionRate)
	}

	writeJSON(w, h.logger, http.StatusOK, analyzeResponse{
		Success: true,
		Analysis: analysisPayload{
			Stats: analysisStats{
				TotalTasks:           taskStats.Total,
				CompletedTasks:       taskStats.Completed,
				PendingTasks:         taskStats.Pending,
				OverdueTasks:         taskStats.Overdue,
				CompletionRate:       taskStats.CompletionRate,
				PriorityDistribution: taskStats.ByPriority,
				CategoryDistribution: taskStats.ByCategory,
				TotalGoals:           goalStats.Total,
				AvgGoalProgress:      goalStats.AvgProgress,
				TotalHabits:          habitStats.Total,
				AvgStreak:            habitStats.AvgStreak,
				ActiveStreaks:        habitStats.ActiveStreaks,
			},
			ProductivityScore: analysis.ProductivityScore,
			Insights:          analysis.Insights,
			Recommendations:   analysis.Recommendations,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
