// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-optimizer/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a
// JSON file. All fields are optional; missing values fall back to
// defaults or are supplied via CLI flags and environment variables.
type Config struct {
	// Generation
	APIKey      string  `json:"api_key,omitempty"`     // Gemini API key; env takes precedence
	Model       string  `json:"model,omitempty"`       // Generation model name
	Temperature float64 `json:"temperature,omitempty"` // Sampling temperature (0.0-1.0)

	// Resource protection
	CallsPerMinute int `json:"calls_per_minute,omitempty"`
	CallsPerDay    int `json:"calls_per_day,omitempty"`
	CacheTTLHours  int `json:"cache_ttl_hours,omitempty"` // -1 disables caching
	MaxRetries     int `json:"max_retries,omitempty"`

	// Scoring
	Weights    scoring.Weights    `json:"weights,omitempty"`
	Thresholds scoring.Thresholds `json:"thresholds,omitempty"`

	// Rewriting
	SummaryMinLength int `json:"summary_min_length,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the standard configuration.
func Defaults() Config {
	return Config{
		Model:            "gemini-2.5-flash",
		Temperature:      0.3,
		CallsPerMinute:   5,
		CallsPerDay:      1500,
		CacheTTLHours:    24,
		MaxRetries:       3,
		Weights:          scoring.DefaultWeights(),
		Thresholds:       scoring.DefaultThresholds(),
		SummaryMinLength: 50,
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// APIKeyFromEnv returns the generation API key from the environment,
// checking GEMINI_API_KEY then GOOGLE_API_KEY.
func APIKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("config error: 'temperature' must be between 0.0 and 1.0")
	}
	if c.CallsPerMinute < 0 {
		return fmt.Errorf("config error: 'calls_per_minute' must be non-negative")
	}
	if c.CallsPerDay < 0 {
		return fmt.Errorf("config error: 'calls_per_day' must be non-negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	if c.CacheTTLHours < -1 {
		return fmt.Errorf("config error: 'cache_ttl_hours' must be -1, 0 or positive")
	}
	if c.SummaryMinLength < 0 {
		return fmt.Errorf("config error: 'summary_min_length' must be non-negative")
	}

	weightSum := c.Weights.KeywordMatch + c.Weights.SkillAlignment +
		c.Weights.ATSFormat + c.Weights.ContentQuality
	if weightSum != 0 && (weightSum < 0.99 || weightSum > 1.01) {
		return fmt.Errorf("config error: scoring weights must sum to 1.0, got %.2f", weightSum)
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.CallsPerMinute == 0 {
		result.CallsPerMinute = defaults.CallsPerMinute
	}
	if result.CallsPerDay == 0 {
		result.CallsPerDay = defaults.CallsPerDay
	}
	if result.CacheTTLHours == 0 {
		result.CacheTTLHours = defaults.CacheTTLHours
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.Weights == (scoring.Weights{}) {
		result.Weights = defaults.Weights
	}
	if result.Thresholds == (scoring.Thresholds{}) {
		result.Thresholds = defaults.Thresholds
	}
	if result.SummaryMinLength == 0 {
		result.SummaryMinLength = defaults.SummaryMinLength
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags
	// always win for bools.

	return result
}
