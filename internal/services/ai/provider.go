// Package ai formats bounded summaries of the user's entities and talks
// to the external completion service on their behalf.
package ai

import (
	"context"
)

// CompletionRequest is a single system+user exchange sent to the
// completion service. Zero Temperature and MaxTokens leave the model
// defaults in place.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
}

// Provider is the interface to the external completion service.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
