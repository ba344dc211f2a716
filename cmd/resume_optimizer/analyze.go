package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the keyword gap between a resume and a job posting",
	Long:  "Parses both documents and prints which job keywords the resume covers, which are missing, and suggestions for closing the gap.",
	RunE:  runAnalyze,
}

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeJobURL     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL to fetch job posting from")

	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	resumeText, err := loadResumeText(analyzeResumePath)
	if err != nil {
		return err
	}
	jobText, err := loadJobText(ctx, analyzeJobPath, analyzeJobURL)
	if err != nil {
		return err
	}

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	analysis, err := buildPipeline(client, cfg).Analyze(ctx, resumeText, jobText)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintGap(analysis.Gap)

	return nil
}
