package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(types.ScoreBreakdown{
		KeywordMatch:   0.8,
		SkillAlignment: 0.5,
		ATSFormat:      1.0,
		ContentQuality: 0.7,
		Overall:        0.755,
	})
	output := buf.String()

	assert.Contains(t, output, "ATS COMPATIBILITY SCORE")
	assert.Contains(t, output, "75.5 / 100")
	assert.Contains(t, output, "Keyword match")
	assert.Contains(t, output, "Skill alignment")
}

func TestPrintCompliance(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompliance(&scoring.ComplianceReport{
		Score:  0.875,
		Issues: []string{"Resume missing standard section: summary"},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS COMPLIANCE")
	assert.Contains(t, output, "87.5 / 100")
	assert.Contains(t, output, "missing standard section")
}

func TestPrintComplianceClean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompliance(&scoring.ComplianceReport{Score: 1.0})

	assert.Contains(t, buf.String(), "No compliance issues found")
}

func TestPrintComplianceNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCompliance(nil)
	assert.Empty(t, buf.String())
}

func TestPrintGap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGap(&keywords.Analysis{
		Matched:     []string{"Go", "PostgreSQL"},
		Missing:     []string{"Kubernetes"},
		Density:     0.012,
		Suggestions: []string{`Add "Kubernetes" to your skills section if you have experience with it`},
	})
	output := buf.String()

	assert.Contains(t, output, "KEYWORD GAP ANALYSIS")
	assert.Contains(t, output, "Matched: 2")
	assert.Contains(t, output, "Missing: 1")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(&types.OptimizationResult{
		ID:                 uuid.New(),
		Status:             types.StatusCompleted,
		OriginalScore:      62.5,
		OptimizedScore:     78.0,
		ATSComplianceScore: 85.0,
		Improvements:       []string{"Rewrote the professional summary"},
		Recommendations:    []string{"Expand your resume content"},
	})
	output := buf.String()

	assert.Contains(t, output, "OPTIMIZATION RESULT")
	assert.Contains(t, output, "62.5")
	assert.Contains(t, output, "78.0")
	assert.Contains(t, output, "completed")
	assert.Contains(t, output, "Rewrote the professional summary")
}

func TestPrintResultNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(nil)
	assert.Empty(t, buf.String())
}
