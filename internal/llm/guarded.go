package llm

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-optimizer/internal/cache"
	"github.com/jonathan/resume-optimizer/internal/ratelimit"
)

// GuardedClient wraps a Client with the resource-protection layer:
// a response cache consulted before every call, a rate limiter that
// serializes quota consumption, and singleflight so concurrent
// requests for the same prompt pair result in a single upstream call.
type GuardedClient struct {
	inner   Client
	cache   *cache.Cache
	limiter *ratelimit.Limiter
	group   singleflight.Group
}

// NewGuardedClient wraps inner. Cache and limiter may be shared with
// other guarded clients; both are safe for concurrent use.
func NewGuardedClient(inner Client, responses *cache.Cache, limiter *ratelimit.Limiter) *GuardedClient {
	return &GuardedClient{inner: inner, cache: responses, limiter: limiter}
}

// Generate returns the cached response for the prompt pair when fresh,
// otherwise waits for rate-limit capacity and calls the inner client.
func (g *GuardedClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return g.do(ctx, cache.Key(systemPrompt, userPrompt), func() (string, error) {
		return g.inner.Generate(ctx, systemPrompt, userPrompt)
	})
}

// GenerateJSON is the JSON-mode counterpart of Generate. JSON and text
// responses for the same prompt pair are cached under distinct keys.
func (g *GuardedClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return g.do(ctx, cache.Key("json\x00"+systemPrompt, userPrompt), func() (string, error) {
		return g.inner.GenerateJSON(ctx, systemPrompt, userPrompt)
	})
}

func (g *GuardedClient) do(ctx context.Context, key string, call func() (string, error)) (string, error) {
	if value, ok := g.cache.Get(key); ok {
		return value, nil
	}

	value, err, _ := g.group.Do(key, func() (any, error) {
		// Re-check under singleflight: another caller may have filled
		// the entry while this one waited.
		if value, ok := g.cache.Get(key); ok {
			return value, nil
		}

		if err := g.limiter.Wait(ctx); err != nil {
			return "", err
		}

		response, err := call()
		if err != nil {
			return "", err
		}
		g.cache.Set(key, response)
		return response, nil
	})
	if err != nil {
		return "", err
	}

	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected cached value type %T", value)
	}
	return text, nil
}

// Close closes the wrapped client.
func (g *GuardedClient) Close() error {
	return g.inner.Close()
}
