package types

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks the lifecycle of an optimization run.
type Status string

// Optimization run states.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// ScoreBreakdown holds the four ATS sub-scores plus their weighted sum.
// All values are in [0,1]. Overall is always derived from the sub-scores
// by the scoring engine and never mutated independently.
type ScoreBreakdown struct {
	KeywordMatch   float64 `json:"keyword_match"`
	SkillAlignment float64 `json:"skill_alignment"`
	ATSFormat      float64 `json:"ats_format"`
	ContentQuality float64 `json:"content_quality"`
	Overall        float64 `json:"overall"`
}

// OptimizationResult is the full output of one pipeline run.
// Scores are on a 0-100 scale for presentation. OriginalResume keeps
// the untouched input as an audit trail next to the optimized copy.
type OptimizationResult struct {
	ID                 uuid.UUID     `json:"id"`
	OriginalScore      float64       `json:"original_score"`
	OptimizedScore     float64       `json:"optimized_score"`
	ATSComplianceScore float64       `json:"ats_compliance_score"`
	MissingKeywords    []string      `json:"missing_keywords"`
	Recommendations    []string      `json:"recommendations"`
	Improvements       []string      `json:"improvements"`
	OriginalResume     *ResumeRecord `json:"original_resume,omitempty"`
	OptimizedResume    *ResumeRecord `json:"optimized_resume,omitempty"`
	Status             Status        `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
}
