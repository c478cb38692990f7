package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/benvon/zen-planner/internal/stats"
)

// Insight is one actionable observation in an analysis result.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Actionable  bool   `json:"actionable"`
	Action      string `json:"action,omitempty"`
}

// Analysis is the structured productivity analysis relayed to the caller.
type Analysis struct {
	ProductivityScore int       `json:"productivityScore"`
	Insights          []Insight `json:"insights"`
	Recommendations   []string  `json:"recommendations"`
}

const analysisSystemPrompt = "You are a productivity analysis AI. Analyze data and provide actionable insights in JSON format only. No markdown, just valid JSON."

// AnalysisSystemPrompt returns the system prompt for the analysis request.
func AnalysisSystemPrompt() string {
	return analysisSystemPrompt
}

// BuildAnalysisPrompt renders the locally computed statistics into the
// analysis prompt sent upstream. Only aggregates leave the process,
// never the entities themselves.
func BuildAnalysisPrompt(task stats.TaskStats, goal stats.GoalStats, habit stats.HabitStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Analyze the following productivity data and provide 3-5 actionable insights:

TASK STATISTICS:
- Total tasks: %d
- Completed: %d
- Pending: %d
- Overdue: %d
- Completion rate: %d%%

PRIORITY BREAKDOWN (pending):
- High: %d
- Medium: %d
- Low: %d
`,
		task.Total, task.Completed, task.Pending, task.Overdue, task.CompletionRate,
		task.ByPriority["high"], task.ByPriority["medium"], task.ByPriority["low"])

	b.WriteString("\nCATEGORY DISTRIBUTION:\n")
	categories := make([]string, 0, len(task.ByCategory))
	for cat := range task.ByCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		fmt.Fprintf(&b, "- %s: %d tasks\n", cat, task.ByCategory[cat])
	}

	fmt.Fprintf(&b, `
GOAL PROGRESS:
- Total goals: %d
- Average progress: %d%%

HABIT TRACKING:
- Total habits: %d
- Active streaks: %d
- Average streak: %d days

Provide insights in the following JSON format only:
{
  "productivityScore": <number 0-100>,
  "insights": [
    {
      "type": "tip|warning|achievement|suggestion",
      "title": "<short title>",
      "description": "<detailed insight>",
      "actionable": <boolean>,
      "action": "<optional action suggestion>"
    }
  ],
  "recommendations": ["<recommendation 1>", "<recommendation 2>"]
}`,
		goal.Total, goal.AvgProgress,
		habit.Total, habit.ActiveStreaks, habit.AvgStreak)

	return b.String()
}

// DefaultAnalysis is the low-confidence fallback used when the upstream
// reply cannot be parsed. The score falls back to the completion rate.
func DefaultAnalysis(completionRate int) Analysis {
	return Analysis{
		ProductivityScore: completionRate,
		Insights: []Insight{
			{
				Type:        "suggestion",
				Title:       "Keep tracking your progress",
				Description: "Continue using the app to get more personalized insights.",
			},
		},
		Recommendations: []string{
			"Add more tasks to get better insights",
			"Set up goals to track long-term progress",
		},
	}
}

// ParseAnalysis extracts the structured analysis from the model's reply.
// Markdown code fences are stripped first; anything that still fails to
// parse as the expected shape yields the default fallback result.
func ParseAnalysis(reply string, completionRate int) Analysis {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if !gjson.Valid(cleaned) {
		return DefaultAnalysis(completionRate)
	}
	parsed := gjson.Parse(cleaned)
	if !parsed.IsObject() {
		return DefaultAnalysis(completionRate)
	}

	analysis := Analysis{
		ProductivityScore: completionRate,
		Insights:          []Insight{},
		Recommendations:   []string{},
	}
	if score := parsed.Get("productivityScore"); score.Exists() {
		analysis.ProductivityScore = int(score.Int())
	}
	for _, item := range parsed.Get("insights").Array() {
		analysis.Insights = append(analysis.Insights, Insight{
			Type:        item.Get("type").String(),
			Title:       item.Get("title").String(),
			Description: item.Get("description").String(),
			Actionable:  item.Get("actionable").Bool(),
			Action:      item.Get("action").String(),
		})
	}
	for _, item := range parsed.Get("recommendations").Array() {
		analysis.Recommendations = append(analysis.Recommendations, item.String())
	}
	return analysis
}
