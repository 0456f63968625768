package providers

import (
	"context"
)

// Request represents one structured completion call to an LLM provider
type Request struct {
	Model       string
	Temperature float64
	System      string
	User        string
	SchemaName  string
	Schema      map[string]any
}

// Response carries the raw model reply and token usage for logging
type Response struct {
	Content     string
	TotalTokens int
}

// Provider defines the interface for an LLM provider
type Provider interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
