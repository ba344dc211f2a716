// Package observability provides formatted output utilities for the
// CLI: score cards, gap summaries and run results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScore outputs the score breakdown on a 0-100 scale.
func (p *Printer) PrintScore(breakdown types.ScoreBreakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:          %5.1f / 100\n\n", breakdown.Overall*100))
	sb.WriteString(fmt.Sprintf("Keyword match:    %5.1f\n", breakdown.KeywordMatch*100))
	sb.WriteString(fmt.Sprintf("Skill alignment:  %5.1f\n", breakdown.SkillAlignment*100))
	sb.WriteString(fmt.Sprintf("ATS format:       %5.1f\n", breakdown.ATSFormat*100))
	sb.WriteString(fmt.Sprintf("Content quality:  %5.1f", breakdown.ContentQuality*100))

	p.printBox("ATS COMPATIBILITY SCORE", sb.String())
}

// PrintCompliance outputs the rule-based compliance report.
func (p *Printer) PrintCompliance(report *scoring.ComplianceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compliance: %.1f / 100\n", report.Score*100))

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", report.Issues[i]))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	} else {
		sb.WriteString("\n✅ No compliance issues found\n")
	}

	p.printBox("ATS COMPLIANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGap outputs the keyword gap analysis.
func (p *Printer) PrintGap(gap *keywords.Analysis) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched: %d   Missing: %d   Density: %.3f\n",
		len(gap.Matched), len(gap.Missing), gap.Density))

	if len(gap.Missing) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(gap.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", gap.Missing[i]))
		}
		if len(gap.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gap.Missing)-maxItemsToShow))
		}
	}

	if len(gap.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(gap.Suggestions), 3)
		for i := 0; i < count; i++ {
			suggestion := gap.Suggestions[i]
			if len(suggestion) > 50 {
				suggestion = suggestion[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
		if len(gap.Suggestions) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gap.Suggestions)-3))
		}
	}

	p.printBox("KEYWORD GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the summary of a completed optimization run.
func (p *Printer) PrintResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", result.ID))
	sb.WriteString(fmt.Sprintf("Status:     %s\n\n", result.Status))
	sb.WriteString(fmt.Sprintf("Original:   %5.1f / 100\n", result.OriginalScore))
	sb.WriteString(fmt.Sprintf("Optimized:  %5.1f / 100\n", result.OptimizedScore))
	sb.WriteString(fmt.Sprintf("Compliance: %5.1f / 100\n", result.ATSComplianceScore))

	if len(result.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		count := min(len(result.Improvements), maxItemsToShow)
		for i := 0; i < count; i++ {
			improvement := result.Improvements[i]
			if len(improvement) > 50 {
				improvement = improvement[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", improvement))
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), 3)
		for i := 0; i < count; i++ {
			recommendation := result.Recommendations[i]
			if len(recommendation) > 50 {
				recommendation = recommendation[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", recommendation))
		}
		if len(result.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-3))
		}
	}

	p.printBox("OPTIMIZATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
