package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestComplianceCheck_CleanResume(t *testing.T) {
	resume := &types.ResumeRecord{
		Contact: types.ContactInfo{Email: "jane@example.com"},
		RawText: "Jane Doe\njane@example.com\n\nSummary\nEngineer\n\nExperience\nEducation\nSkills",
	}
	job := &types.JobRecord{Keywords: []string{"engineer"}}

	report := NewComplianceChecker().Check(resume, job)

	assert.InDelta(t, 1.0, report.Score, 0.001)
	assert.Empty(t, report.Issues)
}

func TestComplianceCheck_ContactBuriedInBody(t *testing.T) {
	resume := &types.ResumeRecord{
		Contact: types.ContactInfo{Email: "jane@example.com"},
		RawText: "line\nline\nline\nline\nline\nline\njane@example.com",
	}

	report := NewComplianceChecker().Check(resume, nil)

	assert.Equal(t, 0.5, report.Breakdown["avoid_headers_footers"])
	assert.Contains(t, report.Issues, "Contact information may be in header/footer")
}

func TestComplianceCheck_MissingSectionsAndGlyphs(t *testing.T) {
	resume := &types.ResumeRecord{RawText: "│ skills ─"}

	report := NewComplianceChecker().Check(resume, nil)

	assert.Equal(t, 0.25, report.Breakdown["use_standard_sections"])
	assert.InDelta(t, 0.8, report.Breakdown["avoid_complex_formatting"], 0.001)
	assert.Contains(t, report.Suggestions, "Add experience section with clear header")
}

func TestComplianceCheck_KeywordCoverage(t *testing.T) {
	resume := &types.ResumeRecord{RawText: "experience education skills go"}
	job := &types.JobRecord{Keywords: []string{"go", "kafka"}, RequiredSkills: []string{"terraform"}}

	report := NewComplianceChecker().Check(resume, job)

	assert.InDelta(t, 1.0/3.0, report.Breakdown["keyword_optimization"], 0.001)
	assert.Contains(t, report.Issues, "Missing important keyword: kafka")
	assert.Contains(t, report.Issues, "Missing important keyword: terraform")
}

func TestComplianceCheck_ScoreWithinBounds(t *testing.T) {
	report := NewComplianceChecker().Check(&types.ResumeRecord{}, &types.JobRecord{})
	assert.GreaterOrEqual(t, report.Score, 0.0)
	assert.LessOrEqual(t, report.Score, 1.0)
}
