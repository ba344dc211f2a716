// Package scoring implements the deterministic ATS compatibility score.
// Scoring is a pure function of its inputs: no I/O, no AI calls, and
// every sub-rule degrades to a defined value instead of failing.
package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Weights control how sub-scores combine into the overall score.
// The defaults mirror the heuristic constants the system was tuned
// with; they are configuration, not invariants.
type Weights struct {
	KeywordMatch   float64 `json:"keyword_match"`
	SkillAlignment float64 `json:"skill_alignment"`
	ATSFormat      float64 `json:"ats_format"`
	ContentQuality float64 `json:"content_quality"`
}

// DefaultWeights returns the standard sub-score weighting.
func DefaultWeights() Weights {
	return Weights{
		KeywordMatch:   0.30,
		SkillAlignment: 0.25,
		ATSFormat:      0.25,
		ContentQuality: 0.20,
	}
}

// Thresholds hold the content-quality heuristics.
type Thresholds struct {
	MinWordCount    int `json:"min_word_count"`
	MaxWordCount    int `json:"max_word_count"`
	NumericMentions int `json:"numeric_mentions"`
}

// DefaultThresholds returns the standard content-quality thresholds:
// an ideal length of 300-800 words and up to ten numeric mentions
// counting toward quantified achievements.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinWordCount:    300,
		MaxWordCount:    800,
		NumericMentions: 10,
	}
}

// standardSections are the section names an ATS expects to find.
var standardSections = []string{"experience", "education", "skills"}

// decorativeGlyphs are box-drawing and bullet variants that confuse
// ATS text extraction.
var decorativeGlyphs = []string{"│", "─", "┌", "┐", "└", "┘", "■", "●", "◆"}

var numberPattern = regexp.MustCompile(`\d+`)

// Scorer computes ScoreBreakdowns with a fixed configuration.
type Scorer struct {
	weights    Weights
	thresholds Thresholds
}

// NewScorer creates a Scorer. Zero-valued weights fall back to the
// defaults so an empty config stays usable.
func NewScorer(weights Weights, thresholds Thresholds) *Scorer {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds()
	}
	return &Scorer{weights: weights, thresholds: thresholds}
}

// Score computes the weighted ATS compatibility breakdown for a
// (résumé, job) pair. Same inputs always produce the same output.
func (s *Scorer) Score(resume *types.ResumeRecord, job *types.JobRecord) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{}
	if resume == nil || job == nil {
		return breakdown
	}

	breakdown.KeywordMatch = s.scoreKeywordMatch(resume, job)
	breakdown.SkillAlignment = s.scoreSkillAlignment(resume, job)
	breakdown.ATSFormat = s.scoreATSFormat(resume)
	breakdown.ContentQuality = s.scoreContentQuality(resume)

	breakdown.Overall = breakdown.KeywordMatch*s.weights.KeywordMatch +
		breakdown.SkillAlignment*s.weights.SkillAlignment +
		breakdown.ATSFormat*s.weights.ATSFormat +
		breakdown.ContentQuality*s.weights.ContentQuality

	return breakdown
}

// scoreKeywordMatch is the fraction of job keywords found, case-folded,
// as substrings of the résumé raw text. A job without keywords scores 1.
func (s *Scorer) scoreKeywordMatch(resume *types.ResumeRecord, job *types.JobRecord) float64 {
	if len(job.Keywords) == 0 {
		return 1.0
	}
	text := strings.ToLower(resume.RawText)
	matches := 0
	for _, keyword := range job.Keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			matches++
		}
	}
	return float64(matches) / float64(len(job.Keywords))
}

// scoreSkillAlignment is the fraction of required skills present in the
// résumé skill list, compared case-insensitively as sets.
func (s *Scorer) scoreSkillAlignment(resume *types.ResumeRecord, job *types.JobRecord) float64 {
	if len(job.RequiredSkills) == 0 {
		return 1.0
	}
	resumeSkills := make(map[string]bool, len(resume.Skills))
	for _, skill := range resume.Skills {
		resumeSkills[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	required := make(map[string]bool, len(job.RequiredSkills))
	matches := 0
	for _, skill := range job.RequiredSkills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if required[key] {
			continue
		}
		required[key] = true
		if resumeSkills[key] {
			matches++
		}
	}
	return float64(matches) / float64(len(required))
}

// scoreATSFormat averages section presence with a decorative-glyph
// penalty.
func (s *Scorer) scoreATSFormat(resume *types.ResumeRecord) float64 {
	text := strings.ToLower(resume.RawText)

	found := 0
	for _, section := range standardSections {
		if strings.Contains(text, section) {
			found++
		}
	}
	sectionScore := float64(found) / float64(len(standardSections))

	formatScore := 1.0
	for _, glyph := range decorativeGlyphs {
		if strings.Contains(resume.RawText, glyph) {
			formatScore = 0.5
			break
		}
	}

	return (sectionScore + formatScore) / 2
}

// scoreContentQuality averages a word-count check with a quantified
// achievement proxy based on numeric mentions.
func (s *Scorer) scoreContentQuality(resume *types.ResumeRecord) float64 {
	words := len(strings.Fields(resume.RawText))

	lengthScore := 0.7
	if words >= s.thresholds.MinWordCount && words <= s.thresholds.MaxWordCount {
		lengthScore = 1.0
	}

	numbers := len(numberPattern.FindAllString(resume.RawText, -1))
	achievementScore := float64(numbers) / float64(s.thresholds.NumericMentions)
	if achievementScore > 1.0 {
		achievementScore = 1.0
	}

	return (lengthScore + achievementScore) / 2
}
