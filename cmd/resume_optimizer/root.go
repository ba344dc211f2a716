package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/cache"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/jonathan/resume-optimizer/internal/ratelimit"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "ATS resume scoring and optimization",
	Long:  "Scores resumes against job postings for ATS compatibility, analyzes keyword gaps, and rewrites resume content to target a specific job.",
}

var (
	configPath string
	apiKeyFlag string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress information")

	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadSettings merges the config file, environment and flags.
func loadSettings() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	} else if key := config.APIKeyFromEnv(); key != "" {
		cfg.APIKey = key
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildClient assembles the guarded generation client from settings.
func buildClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key required: set GEMINI_API_KEY or pass --api-key")
	}

	llmConfig := llm.DefaultConfig()
	llmConfig.Model = cfg.Model
	llmConfig.Temperature = float32(cfg.Temperature)
	llmConfig.Retry.MaxAttempts = cfg.MaxRetries

	inner, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.CacheTTLHours) * time.Hour
	if cfg.CacheTTLHours < 0 {
		ttl = 0
	}
	limiter := ratelimit.New(cfg.CallsPerMinute, cfg.CallsPerDay)

	return llm.NewGuardedClient(inner, cache.New(ttl), limiter), nil
}

// buildPipeline creates a pipeline using settings, with progress
// reporting in verbose mode.
func buildPipeline(client llm.Client, cfg config.Config) *pipeline.Pipeline {
	opts := pipeline.Options{
		Weights:          cfg.Weights,
		Thresholds:       cfg.Thresholds,
		SummaryMinLength: cfg.SummaryMinLength,
	}
	if cfg.Verbose {
		opts.OnProgress = func(step, message string) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", step, message)
		}
	}
	return pipeline.New(client, opts)
}

// loadResumeText reads the résumé document from disk.
func loadResumeText(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--resume is required")
	}
	return ingestion.ExtractText(path)
}

// loadJobText reads the job posting from a file or fetches it from a
// URL. Exactly one source must be given.
func loadJobText(ctx context.Context, path, urlStr string) (string, error) {
	switch {
	case path == "" && urlStr == "":
		return "", fmt.Errorf("either --job or --job-url must be provided")
	case path != "" && urlStr != "":
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	case path != "":
		return ingestion.ExtractText(path)
	default:
		return fetch.JobPosting(ctx, urlStr, nil)
	}
}
