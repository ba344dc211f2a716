package llm

// Provider represents a generation service provider.
type Provider string

// Supported providers. Only Gemini is implemented today; the constant
// set leaves room for others behind the same Client interface.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds generation settings for a client.
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	Retry       RetryPolicy
}

// DefaultConfig returns the standard Gemini configuration. The low
// temperature keeps extraction output consistent between runs.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.3,
		Retry:       DefaultRetryPolicy(),
	}
}
