package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// ComplianceReport is the output of the rule-based ATS compatibility
// check: an aggregate score plus human-readable issues and fixes.
type ComplianceReport struct {
	Score       float64            `json:"score"`
	Breakdown   map[string]float64 `json:"breakdown"`
	Issues      []string           `json:"issues"`
	Suggestions []string           `json:"suggestions"`
}

// complianceRule evaluates one compatibility aspect. Rules degrade to a
// zero score rather than failing the whole check.
type complianceRule struct {
	name string
	fn   func(resume *types.ResumeRecord, job *types.JobRecord) (float64, []string, []string)
}

// ComplianceChecker runs the fixed rule set against a résumé.
type ComplianceChecker struct {
	rules []complianceRule
}

// NewComplianceChecker creates a checker with the standard rules.
func NewComplianceChecker() *ComplianceChecker {
	return &ComplianceChecker{
		rules: []complianceRule{
			{"avoid_headers_footers", checkHeadersFooters},
			{"use_standard_sections", checkSectionHeaders},
			{"avoid_complex_formatting", checkFormatting},
			{"keyword_optimization", checkKeywordCoverage},
		},
	}
}

// Check evaluates all rules and averages their scores.
func (c *ComplianceChecker) Check(resume *types.ResumeRecord, job *types.JobRecord) *ComplianceReport {
	report := &ComplianceReport{
		Breakdown:   make(map[string]float64, len(c.rules)),
		Issues:      []string{},
		Suggestions: []string{},
	}
	if resume == nil {
		return report
	}

	total := 0.0
	for _, rule := range c.rules {
		score, issues, suggestions := rule.fn(resume, job)
		report.Breakdown[rule.name] = score
		report.Issues = append(report.Issues, issues...)
		report.Suggestions = append(report.Suggestions, suggestions...)
		total += score
	}
	report.Score = total / float64(len(c.rules))

	return report
}

// checkHeadersFooters flags contact info that does not appear near the
// top of the document, a sign it lives in a header or footer an ATS
// will not read.
func checkHeadersFooters(resume *types.ResumeRecord, _ *types.JobRecord) (float64, []string, []string) {
	email := strings.ToLower(resume.Contact.Email)
	if email == "" {
		return 1.0, nil, nil
	}
	lines := strings.Split(resume.RawText, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	head := strings.ToLower(strings.Join(lines, "\n"))
	if strings.Contains(head, email) {
		return 1.0, nil, nil
	}
	return 0.5,
		[]string{"Contact information may be in header/footer"},
		[]string{"Place contact information in main document body"}
}

func checkSectionHeaders(resume *types.ResumeRecord, _ *types.JobRecord) (float64, []string, []string) {
	sections := []string{"experience", "education", "skills", "summary"}
	text := strings.ToLower(resume.RawText)

	var issues, suggestions []string
	found := 0
	for _, section := range sections {
		if strings.Contains(text, section) {
			found++
			continue
		}
		issues = append(issues, fmt.Sprintf("Missing standard section: %s", section))
		suggestions = append(suggestions, fmt.Sprintf("Add %s section with clear header", section))
	}

	return float64(found) / float64(len(sections)), issues, suggestions
}

func checkFormatting(resume *types.ResumeRecord, _ *types.JobRecord) (float64, []string, []string) {
	var issues, suggestions []string
	score := 1.0
	for _, glyph := range decorativeGlyphs {
		if strings.Contains(resume.RawText, glyph) {
			issues = append(issues, fmt.Sprintf("Contains special formatting character: %s", glyph))
			score -= 0.1
		}
	}
	if score < 0 {
		score = 0
	}
	if len(issues) > 0 {
		suggestions = append(suggestions, "Use simple bullet points (- or •) instead of special characters")
	}
	return score, issues, suggestions
}

func checkKeywordCoverage(resume *types.ResumeRecord, job *types.JobRecord) (float64, []string, []string) {
	if job == nil {
		return 1.0, nil, nil
	}
	vocabulary := append(append([]string{}, job.Keywords...), job.RequiredSkills...)
	if len(vocabulary) == 0 {
		return 1.0, nil, nil
	}

	text := strings.ToLower(resume.RawText)
	var missing []string
	matched := 0
	for _, keyword := range vocabulary {
		if strings.Contains(text, strings.ToLower(keyword)) {
			matched++
		} else {
			missing = append(missing, keyword)
		}
	}

	score := float64(matched) / float64(len(vocabulary))
	if len(missing) == 0 {
		return score, nil, nil
	}

	var issues []string
	for i, keyword := range missing {
		if i >= 5 {
			break
		}
		issues = append(issues, fmt.Sprintf("Missing important keyword: %s", keyword))
	}
	suggestions := []string{
		"Incorporate relevant keywords naturally into your experience descriptions",
	}

	return score, issues, suggestions
}
