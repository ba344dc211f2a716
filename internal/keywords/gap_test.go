package keywords

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestAnalyze_PartitionsVocabulary(t *testing.T) {
	resume := &types.ResumeRecord{RawText: "Senior engineer with go and sql experience"}
	job := &types.JobRecord{
		Keywords:       []string{"go", "kafka"},
		RequiredSkills: []string{"sql", "terraform"},
	}

	analysis := Analyze(resume, job)

	assert.Equal(t, []string{"go", "sql"}, analysis.Matched)
	assert.Equal(t, []string{"kafka", "terraform"}, analysis.Missing)

	// matched ∪ missing == vocabulary, and the two are disjoint.
	assert.Len(t, analysis.Matched, 2)
	assert.Len(t, analysis.Missing, 2)
	for _, term := range analysis.Matched {
		assert.NotContains(t, analysis.Missing, term)
	}
}

func TestAnalyze_CaseFolded(t *testing.T) {
	resume := &types.ResumeRecord{RawText: "Worked with GO daily"}
	job := &types.JobRecord{Keywords: []string{"go"}}

	analysis := Analyze(resume, job)

	assert.Equal(t, []string{"go"}, analysis.Matched)
	assert.Empty(t, analysis.Missing)
}

func TestAnalyze_Density(t *testing.T) {
	resume := &types.ResumeRecord{RawText: "go sql python java"}
	job := &types.JobRecord{Keywords: []string{"go", "sql"}}

	analysis := Analyze(resume, job)

	assert.InDelta(t, 2.0/4.0, analysis.Density, 0.001)
}

func TestAnalyze_EmptyResumeDensityWellDefined(t *testing.T) {
	analysis := Analyze(&types.ResumeRecord{}, &types.JobRecord{Keywords: []string{"go"}})

	assert.Equal(t, 0.0, analysis.Density)
	assert.Equal(t, []string{"go"}, analysis.Missing)
}

func TestAnalyze_SuggestionsRequiredFirst(t *testing.T) {
	resume := &types.ResumeRecord{RawText: "nothing relevant here"}
	job := &types.JobRecord{
		Keywords:       []string{"microservices", "observability"},
		RequiredSkills: []string{"go", "kubernetes"},
	}

	analysis := Analyze(resume, job)

	require.Len(t, analysis.Suggestions, 4)
	assert.Contains(t, analysis.Suggestions[0], `"go"`)
	assert.Contains(t, analysis.Suggestions[1], `"kubernetes"`)
	assert.Contains(t, analysis.Suggestions[2], `"microservices"`)
	assert.Contains(t, analysis.Suggestions[3], `"observability"`)
}

func TestAnalyze_SuggestionsCappedAtTen(t *testing.T) {
	var keywords []string
	for i := 0; i < 20; i++ {
		keywords = append(keywords, fmt.Sprintf("term%d", i))
	}
	analysis := Analyze(&types.ResumeRecord{}, &types.JobRecord{Keywords: keywords})

	assert.Len(t, analysis.Suggestions, 10)
	// Relative order within the class is preserved.
	assert.Contains(t, analysis.Suggestions[0], `"term0"`)
	assert.Contains(t, analysis.Suggestions[9], `"term9"`)
}

func TestAnalyze_VocabularyDedupFirstWins(t *testing.T) {
	job := &types.JobRecord{
		Keywords:       []string{"Go"},
		RequiredSkills: []string{"go", "SQL"},
	}
	analysis := Analyze(&types.ResumeRecord{}, job)

	assert.Equal(t, []string{"Go", "SQL"}, analysis.Missing)
}

func TestAnalyze_NilInputs(t *testing.T) {
	analysis := Analyze(nil, nil)

	assert.NotNil(t, analysis.Matched)
	assert.NotNil(t, analysis.Missing)
	assert.Empty(t, analysis.Suggestions)
}
