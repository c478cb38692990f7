package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"
)

const (
	// DefaultOpenAIModel is the default model to use
	DefaultOpenAIModel = "gpt-4o-mini"
	// DefaultOpenAIBaseURL is the default OpenAI API base URL
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	// DefaultTimeout is the default timeout for API calls
	DefaultTimeout = 30 * time.Second
)

// ErrNoChoicesInResponse is returned when the API response has no choices
var ErrNoChoicesInResponse = errors.New("no choices in response")

// OpenAIProvider implements the Provider interface using OpenAI's API
type OpenAIProvider struct {
	client    openai.Client
	model     string
	logger    *zap.Logger
	debugMode bool
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return NewOpenAIProviderWithLogger(apiKey, DefaultOpenAIBaseURL, model, nil, false)
}

// NewOpenAIProviderWithLogger creates a new OpenAI provider with logger support
func NewOpenAIProviderWithLogger(apiKey, baseURL, model string, logger *zap.Logger, debugMode bool) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}

	httpClient := &http.Client{
		Timeout: DefaultTimeout,
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(httpClient),
	)

	return &OpenAIProvider{
		client:    client,
		model:     model,
		logger:    logger,
		debugMode: debugMode,
	}
}

// Complete sends a single system+user exchange and returns the reply text.
func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	if p.logger != nil && p.debugMode {
		p.logger.Debug("llm_api_request",
			zap.String("model", p.model),
			zap.Int("system_length", len(req.System)),
			zap.Int("user_length", len(req.User)),
			zap.String("user_preview", SanitizePreview(req.User)),
		)
	}

	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, params)
	latency := time.Since(start)

	if err != nil {
		if p.logger != nil && p.debugMode {
			p.logger.Debug("llm_api_error",
				zap.String("model", p.model),
				zap.Error(err),
				zap.Int64("latency_ms", latency.Milliseconds()),
			)
		}
		return "", fmt.Errorf("failed to complete: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoicesInResponse
	}

	content := resp.Choices[0].Message.Content

	if p.logger != nil && p.debugMode {
		p.logger.Debug("llm_api_response",
			zap.String("model", p.model),
			zap.Int("response_length", len(content)),
			zap.String("response_preview", SanitizePreview(content)),
			zap.Int64("latency_ms", latency.Milliseconds()),
		)
	}

	return content, nil
}
