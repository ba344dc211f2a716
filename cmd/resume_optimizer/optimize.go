package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/rendering"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a resume for a target job posting",
	Long:  "Parses the resume and job posting, scores the match, rewrites the summary, skills and experience sections toward the job, and rescores the result.",
	RunE:  runOptimize,
}

var (
	optResumePath string
	optJobPath    string
	optJobURL     string
	optOutputPath string
	optResultPath string
)

func init() {
	optimizeCmd.Flags().StringVarP(&optResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	optimizeCmd.Flags().StringVarP(&optJobPath, "job", "j", "", "Path to job posting text file")
	optimizeCmd.Flags().StringVarP(&optJobURL, "job-url", "u", "", "URL to fetch job posting from")
	optimizeCmd.Flags().StringVarP(&optOutputPath, "output", "o", "", "Write the optimized resume as Markdown to this path")
	optimizeCmd.Flags().StringVar(&optResultPath, "result-json", "", "Write the full result as JSON to this path")

	_ = optimizeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	resumeText, err := loadResumeText(optResumePath)
	if err != nil {
		return err
	}
	jobText, err := loadJobText(ctx, optJobPath, optJobURL)
	if err != nil {
		return err
	}

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := buildPipeline(client, cfg).Run(ctx, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(result)

	if optOutputPath != "" {
		markdown := rendering.Markdown(result.OptimizedResume)
		if err := os.WriteFile(optOutputPath, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("failed to write optimized resume: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Optimized resume written to %s\n", optOutputPath)
	}

	if optResultPath != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := os.WriteFile(optResultPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Result written to %s\n", optResultPath)
	}

	return nil
}
