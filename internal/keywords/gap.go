// Package keywords performs set-difference analysis between a job
// posting's vocabulary and a résumé's text.
package keywords

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// maxSuggestions caps the suggestion list; required skills are listed
// before general keywords.
const maxSuggestions = 10

// Analysis is the result of one gap analysis. Matched and Missing
// partition the job vocabulary: their union is the vocabulary and they
// never overlap. Both preserve the vocabulary's original order.
type Analysis struct {
	Matched     []string `json:"matched"`
	Missing     []string `json:"missing"`
	Density     float64  `json:"density"`
	Suggestions []string `json:"suggestions"`
}

// Analyze compares the job vocabulary against the résumé's tokenized
// raw text.
func Analyze(resume *types.ResumeRecord, job *types.JobRecord) *Analysis {
	analysis := &Analysis{
		Matched:     []string{},
		Missing:     []string{},
		Suggestions: []string{},
	}
	if resume == nil || job == nil {
		return analysis
	}

	vocabulary := buildVocabulary(job)

	tokens := strings.Fields(strings.ToLower(resume.RawText))
	tokenSet := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		tokenSet[token] = true
	}

	for _, term := range vocabulary {
		if tokenSet[strings.ToLower(term)] {
			analysis.Matched = append(analysis.Matched, term)
		} else {
			analysis.Missing = append(analysis.Missing, term)
		}
	}

	denominator := len(tokens)
	if denominator < 1 {
		denominator = 1
	}
	analysis.Density = float64(len(analysis.Matched)) / float64(denominator)

	analysis.Suggestions = buildSuggestions(analysis.Missing, job)

	return analysis
}

// buildVocabulary merges keywords, required and preferred skills into
// one case-insensitively deduplicated list. Order of first occurrence
// is preserved; keywords come first so extraction relevance survives.
func buildVocabulary(job *types.JobRecord) []string {
	seen := make(map[string]bool)
	vocabulary := []string{}
	for _, source := range [][]string{job.Keywords, job.RequiredSkills, job.PreferredSkills} {
		for _, term := range source {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			key := strings.ToLower(term)
			if seen[key] {
				continue
			}
			seen[key] = true
			vocabulary = append(vocabulary, term)
		}
	}
	return vocabulary
}

// buildSuggestions renders missing terms as actionable advice, required
// skills first, preserving relative order within each class.
func buildSuggestions(missing []string, job *types.JobRecord) []string {
	required := make(map[string]bool, len(job.RequiredSkills))
	for _, skill := range job.RequiredSkills {
		required[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	var requiredSuggestions, generalSuggestions []string
	for _, term := range missing {
		if required[strings.ToLower(term)] {
			requiredSuggestions = append(requiredSuggestions,
				fmt.Sprintf("Add %q to your skills section if you have experience with it", term))
		} else {
			generalSuggestions = append(generalSuggestions,
				fmt.Sprintf("Consider incorporating %q in your job descriptions if relevant", term))
		}
	}

	suggestions := append(requiredSuggestions, generalSuggestions...)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
