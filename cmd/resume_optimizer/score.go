package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long:  "Parses both documents and prints the ATS compatibility score breakdown and compliance report without rewriting anything.",
	RunE:  runScore,
}

var (
	scoreResumePath string
	scoreJobPath    string
	scoreJobURL     string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to job posting text file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL to fetch job posting from")

	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	resumeText, err := loadResumeText(scoreResumePath)
	if err != nil {
		return err
	}
	jobText, err := loadJobText(ctx, scoreJobPath, scoreJobURL)
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

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScore(analysis.Breakdown)
	printer.PrintCompliance(analysis.Compliance)

	return nil
}
