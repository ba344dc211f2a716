// Package pipeline provides the high-level orchestration for a full
// resume optimization run: extraction, scoring, gap analysis, content
// rewriting and rescoring.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/optimizing"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ProgressCallback receives step-level progress updates during a run.
type ProgressCallback func(step, message string)

// Options holds the tunable parts of a pipeline.
type Options struct {
	Weights          scoring.Weights
	Thresholds       scoring.Thresholds
	SummaryMinLength int
	OnProgress       ProgressCallback
}

// Pipeline wires the extraction, scoring and rewriting stages together
// behind one generation client.
type Pipeline struct {
	client     llm.Client
	scorer     *scoring.Scorer
	checker    *scoring.ComplianceChecker
	optimizer  *optimizing.Optimizer
	onProgress ProgressCallback
}

// New creates a pipeline around client. Zero-valued options fall back
// to the standard configuration.
func New(client llm.Client, opts Options) *Pipeline {
	optimizer := optimizing.NewOptimizer(client)
	if opts.SummaryMinLength > 0 {
		optimizer.SetSummaryMinLength(opts.SummaryMinLength)
	}

	return &Pipeline{
		client:     client,
		scorer:     scoring.NewScorer(opts.Weights, opts.Thresholds),
		checker:    scoring.NewComplianceChecker(),
		optimizer:  optimizer,
		onProgress: opts.OnProgress,
	}
}

// Analysis bundles the read-only evaluation of a (résumé, job) pair:
// parsed records, score breakdown, compliance report and keyword gap.
type Analysis struct {
	Resume     *types.ResumeRecord
	Job        *types.JobRecord
	Breakdown  types.ScoreBreakdown
	Compliance *scoring.ComplianceReport
	Gap        *keywords.Analysis
}

// Analyze parses both documents and evaluates the résumé against the
// job without rewriting anything.
func (p *Pipeline) Analyze(ctx context.Context, resumeText, jobText string) (*Analysis, error) {
	resume, job, err := p.parse(ctx, resumeText, jobText)
	if err != nil {
		return nil, err
	}

	p.progress("score", "scoring resume against job posting")
	return &Analysis{
		Resume:     resume,
		Job:        job,
		Breakdown:  p.scorer.Score(resume, job),
		Compliance: p.checker.Check(resume, job),
		Gap:        keywords.Analyze(resume, job),
	}, nil
}

// Run executes the full optimization: analyze, rewrite, rescore. The
// returned result carries both the original and the optimized record.
func (p *Pipeline) Run(ctx context.Context, resumeText, jobText string) (*types.OptimizationResult, error) {
	result := &types.OptimizationResult{
		ID:        uuid.New(),
		Status:    types.StatusProcessing,
		CreatedAt: time.Now().UTC(),
	}

	analysis, err := p.Analyze(ctx, resumeText, jobText)
	if err != nil {
		result.Status = types.StatusFailed
		return result, err
	}

	result.OriginalResume = analysis.Resume
	result.OriginalScore = analysis.Breakdown.Overall * 100
	result.ATSComplianceScore = analysis.Compliance.Score * 100
	result.MissingKeywords = analysis.Gap.Missing
	result.Recommendations = buildRecommendations(analysis)

	p.progress("optimize", "rewriting resume content")
	optimized, report := p.optimizer.Optimize(ctx, analysis.Resume, analysis.Job)
	result.OptimizedResume = optimized

	p.progress("rescore", "scoring optimized resume")
	result.OptimizedScore = p.scorer.Score(optimized, analysis.Job).Overall * 100
	result.Improvements = buildImprovements(result, report)

	result.Status = types.StatusCompleted
	slog.Info("optimization run completed",
		slog.String("id", result.ID.String()),
		slog.Float64("original_score", result.OriginalScore),
		slog.Float64("optimized_score", result.OptimizedScore))

	return result, nil
}

// parse extracts both records concurrently. The guarded client behind
// p.client serializes actual quota consumption.
func (p *Pipeline) parse(ctx context.Context, resumeText, jobText string) (*types.ResumeRecord, *types.JobRecord, error) {
	p.progress("parse", "extracting structured data from resume and job posting")

	var (
		resume *types.ResumeRecord
		job    *types.JobRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resume, err = parsing.ParseResume(gctx, p.client, resumeText)
		return err
	})
	g.Go(func() error {
		var err error
		job, err = parsing.ParseJob(gctx, p.client, jobText)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("extraction failed: %w", err)
	}

	return resume, job, nil
}

func (p *Pipeline) progress(step, message string) {
	if p.onProgress != nil {
		p.onProgress(step, message)
	}
	slog.Debug(message, slog.String("step", step))
}

// buildRecommendations merges compliance and gap suggestions with
// score-derived advice.
func buildRecommendations(analysis *Analysis) []string {
	recommendations := []string{}
	recommendations = append(recommendations, analysis.Compliance.Suggestions...)
	recommendations = append(recommendations, analysis.Gap.Suggestions...)

	if analysis.Breakdown.KeywordMatch < 0.7 {
		recommendations = append(recommendations,
			"Work more of the job posting's keywords into your experience descriptions")
	}
	if analysis.Compliance.Score < 0.8 {
		recommendations = append(recommendations,
			"Improve ATS compliance by addressing the formatting issues listed above")
	}

	words := len(strings.Fields(analysis.Resume.RawText))
	switch {
	case words > 0 && words < 300:
		recommendations = append(recommendations,
			"Expand your resume content; very short resumes score poorly on content quality")
	case words > 800:
		recommendations = append(recommendations,
			"Tighten your resume; overly long resumes score poorly on content quality")
	}

	return dedupeStrings(recommendations)
}

// buildImprovements summarizes what the rewrite pass changed.
func buildImprovements(result *types.OptimizationResult, report *optimizing.Report) []string {
	improvements := []string{}

	delta := result.OptimizedScore - result.OriginalScore
	if delta > 0 {
		improvements = append(improvements,
			fmt.Sprintf("Overall ATS score improved by %.1f points (%.1f to %.1f)",
				delta, result.OriginalScore, result.OptimizedScore))
	}

	if !report.Summary.Fallback && report.Summary.Value != "" {
		improvements = append(improvements, "Rewrote the professional summary to target the job posting")
	}
	if !report.Skills.Fallback && len(report.Skills.Values) > 0 {
		improvements = append(improvements, "Reprioritized the skills section around the job's requirements")
	}
	rewritten := 0
	for _, exp := range report.Experience {
		if !exp.Fallback && len(exp.Values) > 0 {
			rewritten++
		}
	}
	if rewritten > 0 {
		improvements = append(improvements,
			fmt.Sprintf("Rewrote %d of %d experience entries with stronger, keyword-rich bullet points",
				rewritten, len(report.Experience)))
	}

	return improvements
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
