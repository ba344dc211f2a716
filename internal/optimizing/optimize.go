// Package optimizing rewrites résumé content toward a target job
// posting. Every rewrite is gated by validation; a rewrite that fails
// its gate falls back to the original content so the résumé can never
// get worse than its input.
package optimizing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Validation gates for generated content.
const (
	defaultSummaryMinLen = 50
	minBulletLen         = 20
	maxBullets           = 4
	maxSkillLen          = 50
	maxSkills            = 20
	defaultTopKeywords   = 8
)

// TextResult is the outcome of a single-text rewrite. When Fallback is
// true, Value holds the original content and Reason says why.
type TextResult struct {
	Value    string
	Fallback bool
	Reason   string
}

// ListResult is the outcome of a list rewrite.
type ListResult struct {
	Values   []string
	Fallback bool
	Reason   string
}

// Report records what happened to each section during a full
// optimization pass. Experience carries one result per entry, in the
// résumé's order.
type Report struct {
	Summary    TextResult
	Skills     ListResult
	Experience []ListResult
}

// RewrittenSections counts sections where generated content passed its
// validation gate.
func (r *Report) RewrittenSections() int {
	n := 0
	if !r.Summary.Fallback && r.Summary.Value != "" {
		n++
	}
	if !r.Skills.Fallback && len(r.Skills.Values) > 0 {
		n++
	}
	for _, exp := range r.Experience {
		if !exp.Fallback && len(exp.Values) > 0 {
			n++
		}
	}
	return n
}

// Optimizer rewrites résumé sections against a job posting.
type Optimizer struct {
	client        llm.Client
	topKeywords   int
	summaryMinLen int
}

// NewOptimizer returns an optimizer using client for generation.
func NewOptimizer(client llm.Client) *Optimizer {
	return &Optimizer{
		client:        client,
		topKeywords:   defaultTopKeywords,
		summaryMinLen: defaultSummaryMinLen,
	}
}

// SetSummaryMinLength overrides the minimum accepted summary length.
func (o *Optimizer) SetSummaryMinLength(n int) {
	if n > 0 {
		o.summaryMinLen = n
	}
}

// Optimize runs the full fixed-order pass: summary, then skills, then
// experience. It returns a rewritten deep copy of resume together with
// a per-section report. The input record is never modified.
func (o *Optimizer) Optimize(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) (*types.ResumeRecord, *Report) {
	optimized := resume.Clone()
	report := &Report{}

	report.Summary = o.OptimizeSummary(ctx, resume, job)
	optimized.Summary = report.Summary.Value

	report.Skills = o.OptimizeSkills(ctx, resume, job)
	optimized.Skills = report.Skills.Values

	report.Experience = o.OptimizeExperience(ctx, resume, job)
	for i, result := range report.Experience {
		if i < len(optimized.Experience) {
			optimized.Experience[i].Description = result.Values
		}
	}

	return optimized, report
}

// OptimizeSummary rewrites the professional summary. An empty summary
// is passed through untouched.
func (o *Optimizer) OptimizeSummary(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) TextResult {
	if strings.TrimSpace(resume.Summary) == "" {
		return TextResult{Value: resume.Summary, Fallback: true, Reason: "no summary to optimize"}
	}

	system := prompts.MustGet("optimizing.json", "optimize-summary-system")
	user := prompts.Format(prompts.MustGet("optimizing.json", "optimize-summary-user"), map[string]string{
		"ApplicantName": orNotSpecified(resume.Contact.Name),
		"Summary":       resume.Summary,
		"JobTitle":      job.Title,
		"Company":       job.Company,
		"Requirements":  joinTop(job.RequiredSkills, o.topKeywords),
		"Keywords":      joinTop(job.Keywords, o.topKeywords),
	})

	response, err := o.client.Generate(ctx, system, user)
	if err != nil {
		slog.Warn("summary optimization failed, keeping original", slog.Any("error", err))
		return TextResult{Value: resume.Summary, Fallback: true, Reason: err.Error()}
	}

	cleaned := cleanSummary(response)
	if len(cleaned) <= o.summaryMinLen {
		slog.Warn("summary rewrite too short, keeping original",
			slog.Int("length", len(cleaned)))
		return TextResult{
			Value:    resume.Summary,
			Fallback: true,
			Reason:   fmt.Sprintf("rewrite shorter than %d characters", o.summaryMinLen),
		}
	}

	return TextResult{Value: cleaned}
}

// OptimizeSkills rewrites and reprioritizes the skills list.
func (o *Optimizer) OptimizeSkills(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) ListResult {
	if len(resume.Skills) == 0 {
		return ListResult{Values: resume.Skills, Fallback: true, Reason: "no skills to optimize"}
	}

	system := prompts.MustGet("optimizing.json", "optimize-skills-system")
	user := prompts.Format(prompts.MustGet("optimizing.json", "optimize-skills-user"), map[string]string{
		"Skills":       strings.Join(resume.Skills, ", "),
		"Requirements": strings.Join(job.RequiredSkills, ", "),
		"Preferred":    joinTop(job.PreferredSkills, 5),
		"Keywords":     joinTop(job.Keywords, o.topKeywords),
	})

	response, err := o.client.Generate(ctx, system, user)
	if err != nil {
		slog.Warn("skills optimization failed, keeping original", slog.Any("error", err))
		return ListResult{Values: resume.Skills, Fallback: true, Reason: err.Error()}
	}

	skills := parseSkillList(response)
	if len(skills) == 0 {
		return ListResult{Values: resume.Skills, Fallback: true, Reason: "rewrite produced no valid skills"}
	}

	return ListResult{Values: skills}
}

// OptimizeExperience rewrites all experience descriptions in a single
// batched call. An entry the batch response misses or fails validation
// for is retried individually; only when that also fails does the
// original description survive.
func (o *Optimizer) OptimizeExperience(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) []ListResult {
	results := make([]ListResult, len(resume.Experience))
	if len(resume.Experience) == 0 {
		return results
	}

	byIndex, err := o.optimizeExperienceBatch(ctx, resume, job)
	if err != nil {
		slog.Warn("batch experience rewrite failed, retrying entries individually",
			slog.Any("error", err))
		for i, exp := range resume.Experience {
			results[i] = o.optimizeExperienceEntry(ctx, exp, job)
		}
		return results
	}

	for i, exp := range resume.Experience {
		if bullets, ok := byIndex[strconv.Itoa(i+1)]; ok {
			if cleaned := parseBullets(bullets); len(cleaned) > 0 {
				results[i] = ListResult{Values: cleaned}
				continue
			}
		}
		results[i] = o.optimizeExperienceEntry(ctx, exp, job)
	}

	return results
}

// optimizeExperienceBatch runs the single-call rewrite over all
// entries, returning bullets keyed by one-based entry number.
func (o *Optimizer) optimizeExperienceBatch(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) (map[string][]string, error) {
	system := prompts.MustGet("optimizing.json", "optimize-experience-batch-system")
	user := prompts.Format(prompts.MustGet("optimizing.json", "optimize-experience-batch-user"), map[string]string{
		"Experiences":  formatExperiences(resume.Experience),
		"JobTitle":     job.Title,
		"Requirements": joinTop(job.RequiredSkills, o.topKeywords),
		"Keywords":     joinTop(job.Keywords, o.topKeywords),
	})

	response, err := o.client.GenerateJSON(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var byIndex map[string][]string
	if err := json.Unmarshal([]byte(response), &byIndex); err != nil {
		return nil, fmt.Errorf("response was not the expected JSON shape: %w", err)
	}
	return byIndex, nil
}

// optimizeExperienceEntry rewrites a single entry's description,
// keeping the original when the rewrite fails its gate.
func (o *Optimizer) optimizeExperienceEntry(ctx context.Context, exp types.ExperienceEntry, job *types.JobRecord) ListResult {
	system := prompts.MustGet("optimizing.json", "optimize-experience-system")
	user := prompts.Format(prompts.MustGet("optimizing.json", "optimize-experience-user"), map[string]string{
		"Position":     orNotSpecified(exp.Position),
		"Company":      orNotSpecified(exp.Company),
		"Description":  strings.Join(exp.Description, "\n"),
		"JobTitle":     job.Title,
		"Requirements": joinTop(job.RequiredSkills, o.topKeywords),
		"Keywords":     joinTop(job.Keywords, o.topKeywords),
	})

	response, err := o.client.Generate(ctx, system, user)
	if err != nil {
		slog.Warn("experience entry rewrite failed, keeping original", slog.Any("error", err))
		return ListResult{Values: exp.Description, Fallback: true, Reason: err.Error()}
	}

	bullets := parseBullets(strings.Split(response, "\n"))
	if len(bullets) == 0 {
		return ListResult{Values: exp.Description, Fallback: true, Reason: "rewrite produced no valid bullets"}
	}
	return ListResult{Values: bullets}
}

// formatExperiences renders entries as the numbered blocks the batch
// prompt expects.
func formatExperiences(entries []types.ExperienceEntry) string {
	blocks := make([]string, 0, len(entries))
	for i, exp := range entries {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Experience #%d:\n", i+1)
		fmt.Fprintf(&sb, "Position: %s\n", orNotSpecified(exp.Position))
		fmt.Fprintf(&sb, "Company: %s\n", orNotSpecified(exp.Company))
		fmt.Fprintf(&sb, "Duration: %s\n", orNotSpecified(exp.Duration))
		sb.WriteString("Current Description:\n")
		if len(exp.Description) == 0 {
			sb.WriteString("  No description")
		} else {
			for j, line := range exp.Description {
				if j > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString("  - " + line)
			}
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
