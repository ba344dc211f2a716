package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ParseJob extracts a canonical JobRecord from raw job posting text
// using LLM extraction.
func ParseJob(ctx context.Context, client llm.Client, rawText string) (*types.JobRecord, error) {
	system := prompts.MustGet("parsing.json", "extract-job-system")
	user := prompts.Format(prompts.MustGet("parsing.json", "extract-job-user"), map[string]string{
		"JobText": rawText,
	})

	response, err := client.GenerateJSON(ctx, system, user)
	if err != nil {
		return nil, &ParseError{Message: "job extraction failed", Cause: err}
	}

	if err := schemas.Validate(schemas.JobV1, []byte(response)); err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(response), &fields); err != nil {
		return nil, &ParseError{Message: "job extraction returned malformed JSON", Cause: err}
	}

	return BuildJob(fields, rawText), nil
}

// BuildJob assembles a JobRecord from a loosely-typed field map.
// Keyword order is kept exactly as extracted; only exact duplicates
// are removed.
func BuildJob(fields map[string]any, rawText string) *types.JobRecord {
	return &types.JobRecord{
		Title:                 Scalar(field(fields, "Title", "title"), "title"),
		Company:               Scalar(field(fields, "Company", "company"), "name"),
		Location:              Scalar(field(fields, "Location", "location")),
		Description:           Scalar(field(fields, "Description", "description"), "description", "text"),
		RequiredSkills:        List(field(fields, "RequiredSkills", "required_skills")),
		PreferredSkills:       List(field(fields, "PreferredSkills", "preferred_skills")),
		ExperienceLevel:       Scalar(field(fields, "ExperienceLevel", "experience_level")),
		EducationRequirements: List(field(fields, "EducationRequirements", "education_requirements")),
		Keywords:              dedupeOrdered(List(field(fields, "Keywords", "keywords"))),
		RawText:               rawText,
	}
}

// dedupeOrdered removes case-insensitive duplicates, first wins.
func dedupeOrdered(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
