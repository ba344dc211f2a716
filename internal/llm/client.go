// Package llm provides the text-generation capability used by the
// extraction and optimization stages, together with the retry, cache
// and rate-limit plumbing that guards it.
package llm

import "context"

// Client is the opaque generation capability. Implementations take a
// system prompt and a user prompt and return the generated text.
type Client interface {
	// Generate produces free-form text.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// GenerateJSON produces a JSON document, with markdown code fences
	// already stripped.
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}
