package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/benvon/zen-planner/internal/middleware"
	"github.com/benvon/zen-planner/internal/services/ai"
)

type stubProvider struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (p *stubProvider) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	p.lastSystem = req.System
	p.lastUser = req.User
	return p.reply, p.err
}

func newAdvisorRouter(provider ai.Provider, limit int64) *mux.Router {
	limiter := middleware.NewRateLimiter("advisor-test", limit, time.Minute)
	h := NewAdvisorHandler(provider, limiter, nil)
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	h.RegisterRoutes(api)
	return r
}

func postJSON(t *testing.T, router *mux.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "9.9.9.9:1234"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestChatSuccess(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{reply: "Tackle the overdue task first."}
	router := newAdvisorRouter(provider, 20)

	body := `{
		"message": "what first?",
		"context": {
			"tasks": [{"title": "pay rent", "completed": false, "priority": "high"}],
			"goals": [{"title": "save money", "progress": 30}],
			"habits": []
		}
	}`
	rr := postJSON(t, router, "/api/ai-advisor", body)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success   bool   `json:"success"`
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Response != provider.reply {
		t.Errorf("resp = %+v", resp)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp %q not RFC3339: %v", resp.Timestamp, err)
	}

	if !strings.Contains(provider.lastSystem, "pay rent") || !strings.Contains(provider.lastSystem, "save money") {
		t.Error("system prompt should include the context summary")
	}
	if provider.lastUser != "what first?" {
		t.Errorf("user message = %q", provider.lastUser)
	}
	if rr.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("rate limit headers missing")
	}
}

func TestChatValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"invalid json", `{not json`, "Invalid JSON body"},
		{"missing message", `{"context": {}}`, "Message is required"},
		{"empty message", `{"message": ""}`, "Message is required"},
		{"too long", `{"message": "` + strings.Repeat("a", ai.MaxMessageLength+1) + `"}`, "Message is too long (max 2000 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router := newAdvisorRouter(&stubProvider{reply: "ok"}, 20)
			rr := postJSON(t, router, "/api/ai-advisor", tt.body)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			var resp struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Success || resp.Error != tt.wantError {
				t.Errorf("resp = %+v, want error %q", resp, tt.wantError)
			}
		})
	}
}

func TestChatMalformedContextIsCoerced(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{reply: "ok"}
	router := newAdvisorRouter(provider, 20)

	// Context collections with the wrong shape degrade to empty, they
	// never fail the request.
	body := `{"message": "hi", "context": {"tasks": "not an array", "goals": 42}}`
	rr := postJSON(t, router, "/api/ai-advisor", body)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if strings.Contains(provider.lastSystem, "Tasks (") {
		t.Error("coerced context should produce no task section")
	}
}

func TestChatRateLimited(t *testing.T) {
	t.Parallel()

	router := newAdvisorRouter(&stubProvider{reply: "ok"}, 2)

	for i := 0; i < 2; i++ {
		if rr := postJSON(t, router, "/api/ai-advisor", `{"message": "hi"}`); rr.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i+1, rr.Code)
		}
	}
	rr := postJSON(t, router, "/api/ai-advisor", `{"message": "hi"}`)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rr.Code)
	}
	if rr.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", rr.Header().Get("X-RateLimit-Remaining"))
	}
	if rr.Header().Get("X-RateLimit-Reset") == "" {
		t.Error("X-RateLimit-Reset missing on the denied response")
	}
	if !strings.Contains(rr.Body.String(), "Too many requests") {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestChatProviderFailure(t *testing.T) {
	t.Parallel()

	router := newAdvisorRouter(&stubProvider{err: errors.New("upstream down")}, 20)
	rr := postJSON(t, router, "/api/ai-advisor", `{"message": "hi"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Failed to get response") {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestChatUnconfiguredProvider(t *testing.T) {
	t.Parallel()

	router := newAdvisorRouter(nil, 20)
	rr := postJSON(t, router, "/api/ai-advisor", `{"message": "hi"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "AI service is not configured") {
		t.Errorf("body = %s", rr.Body.String())
	}
}
