// Package chat turns clipped page content into a structured note summary
// through a configured LLM provider.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/camillescott/cryptic/internal/gemini"
	"github.com/camillescott/cryptic/internal/ollama"
	"github.com/camillescott/cryptic/internal/openai"
	"github.com/camillescott/cryptic/internal/providers"
	"github.com/camillescott/cryptic/internal/summary"
)

const systemPrompt = "You are an expert at structured data extraction. " +
	"You will be given unstructured source from a webpage and should convert it to the given format."

// Service holds a resolved provider and model for summarization calls.
type Service struct {
	provider providers.Provider
	name     string
	model    string
}

// NewService resolves the provider and model to use. Empty arguments fall
// back to the CRYPTIC_PROVIDER environment variable (default openai) and
// the provider's own model variable.
func NewService(name, model string) (*Service, error) {
	if name == "" {
		name = os.Getenv("CRYPTIC_PROVIDER")
		if name == "" {
			name = "openai"
		}
	}
	if model == "" {
		model = defaultModel(name)
	}

	var p providers.Provider
	switch name {
	case "openai":
		p = openai.New()
	case "ollama":
		p = ollama.New()
	case "gemini":
		p = gemini.New()
	default:
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
	return &Service{provider: p, name: name, model: model}, nil
}

// ProviderName returns the resolved provider name.
func (s *Service) ProviderName() string { return s.name }

// Model returns the resolved model name.
func (s *Service) Model() string { return s.model }

func defaultModel(provider string) string {
	switch provider {
	case "openai":
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			return model
		}
		return "gpt-4o-mini"
	case "ollama":
		if model := os.Getenv("OLLAMA_MODEL"); model != "" {
			return model
		}
		return "llama3.1"
	case "gemini":
		if model := os.Getenv("GEMINI_MODEL"); model != "" {
			return model
		}
		return "gemini-1.5-flash"
	default:
		return ""
	}
}

// Summarize sends page content to the model and decodes the structured
// reply. Forcing a category pins the response schema to that category
// instead of letting the model pick one. The returned token count covers
// the whole exchange.
func (s *Service) Summarize(ctx context.Context, content string, forced summary.Category) (*summary.NoteSummary, int, error) {
	schema := summary.Schema()
	if forced != "" {
		if !forced.Valid() {
			return nil, 0, fmt.Errorf("unknown category: %s", forced)
		}
		schema = summary.SchemaForCategory(forced)
	}

	resp, err := s.provider.Complete(ctx, providers.Request{
		Model:       s.model,
		Temperature: 0.1,
		System:      systemPrompt,
		User:        content,
		SchemaName:  summary.SchemaName,
		Schema:      schema,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("completion failed: %w", err)
	}

	var sum summary.NoteSummary
	if err := json.Unmarshal([]byte(stripFences(resp.Content)), &sum); err != nil {
		return nil, resp.TotalTokens, fmt.Errorf("failed to parse summary response: %w", err)
	}
	return &sum, resp.TotalTokens, nil
}

// stripFences trims a markdown code block wrapper some models put around
// JSON replies.
func stripFences(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
