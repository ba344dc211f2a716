package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestScore_SkillAlignmentHalf(t *testing.T) {
	resume := &types.ResumeRecord{Skills: []string{"Python", "SQL"}}
	job := &types.JobRecord{RequiredSkills: []string{"Python", "AWS"}}

	breakdown := NewScorer(DefaultWeights(), DefaultThresholds()).Score(resume, job)

	assert.InDelta(t, 0.5, breakdown.SkillAlignment, 0.001)
}

func TestScore_KeywordMatchSubstring(t *testing.T) {
	resume := &types.ResumeRecord{RawText: "Built Go microservices on AWS"}
	job := &types.JobRecord{Keywords: []string{"go", "aws", "terraform", "kafka"}}

	breakdown := NewScorer(DefaultWeights(), DefaultThresholds()).Score(resume, job)

	assert.InDelta(t, 0.5, breakdown.KeywordMatch, 0.001)
}

func TestScore_EmptyJobVocabularyScoresFull(t *testing.T) {
	resume := &types.ResumeRecord{RawText: "anything"}
	job := &types.JobRecord{}

	breakdown := NewScorer(DefaultWeights(), DefaultThresholds()).Score(resume, job)

	assert.Equal(t, 1.0, breakdown.KeywordMatch)
	assert.Equal(t, 1.0, breakdown.SkillAlignment)
}

func TestScore_ATSFormatGlyphPenalty(t *testing.T) {
	scorer := NewScorer(DefaultWeights(), DefaultThresholds())

	clean := &types.ResumeRecord{RawText: "experience education skills"}
	assert.InDelta(t, 1.0, scorer.Score(clean, &types.JobRecord{}).ATSFormat, 0.001)

	boxed := &types.ResumeRecord{RawText: "experience education skills │"}
	assert.InDelta(t, 0.75, scorer.Score(boxed, &types.JobRecord{}).ATSFormat, 0.001)
}

func TestScore_ContentQuality(t *testing.T) {
	scorer := NewScorer(DefaultWeights(), DefaultThresholds())

	// 400 words, no numbers: (1.0 + 0.0) / 2
	midLength := &types.ResumeRecord{RawText: strings.Repeat("word ", 400)}
	assert.InDelta(t, 0.5, scorer.Score(midLength, &types.JobRecord{}).ContentQuality, 0.001)

	// Short text with 10 numeric mentions: (0.7 + 1.0) / 2
	quantified := &types.ResumeRecord{RawText: "1 2 3 4 5 6 7 8 9 10"}
	assert.InDelta(t, 0.85, scorer.Score(quantified, &types.JobRecord{}).ContentQuality, 0.001)
}

func TestScore_EmptyResumeStillDefined(t *testing.T) {
	breakdown := NewScorer(DefaultWeights(), DefaultThresholds()).Score(&types.ResumeRecord{}, &types.JobRecord{})

	// Word count 0 takes the 0.7 branch, digit proxy is 0.
	assert.InDelta(t, 0.35, breakdown.ContentQuality, 0.001)
	assert.GreaterOrEqual(t, breakdown.Overall, 0.0)
	assert.LessOrEqual(t, breakdown.Overall, 1.0)
}

func TestScore_OverallIsWeightedSum(t *testing.T) {
	resume := &types.ResumeRecord{
		Skills:  []string{"Go"},
		RawText: "experience education skills Go engineer with 5 years",
	}
	job := &types.JobRecord{
		RequiredSkills: []string{"Go"},
		Keywords:       []string{"Go", "Kafka"},
	}

	b := NewScorer(DefaultWeights(), DefaultThresholds()).Score(resume, job)

	want := b.KeywordMatch*0.30 + b.SkillAlignment*0.25 + b.ATSFormat*0.25 + b.ContentQuality*0.20
	assert.InDelta(t, want, b.Overall, 0.0001)
	assert.GreaterOrEqual(t, b.Overall, 0.0)
	assert.LessOrEqual(t, b.Overall, 1.0)
}

func TestScore_Deterministic(t *testing.T) {
	resume := &types.ResumeRecord{Skills: []string{"Go", "SQL"}, RawText: "experience with Go and 3 teams"}
	job := &types.JobRecord{RequiredSkills: []string{"Go"}, Keywords: []string{"teams"}}
	scorer := NewScorer(DefaultWeights(), DefaultThresholds())

	first := scorer.Score(resume, job)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score(resume, job))
	}
}

func TestScore_NilInputs(t *testing.T) {
	breakdown := NewScorer(DefaultWeights(), DefaultThresholds()).Score(nil, nil)
	assert.Equal(t, types.ScoreBreakdown{}, breakdown)
}
