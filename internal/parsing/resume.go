package parsing

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var validate = validator.New()

// ParseResume extracts a canonical ResumeRecord from raw résumé text
// using LLM extraction. The raw JSON from the model is schema-checked,
// then coerced field by field; coercion never fails, so the only error
// paths are the LLM call itself and a response that is not a JSON
// object at all.
func ParseResume(ctx context.Context, client llm.Client, rawText string) (*types.ResumeRecord, error) {
	system := prompts.MustGet("parsing.json", "extract-resume-system")
	user := prompts.Format(prompts.MustGet("parsing.json", "extract-resume-user"), map[string]string{
		"ResumeText": rawText,
	})

	response, err := client.GenerateJSON(ctx, system, user)
	if err != nil {
		return nil, &ParseError{Message: "resume extraction failed", Cause: err}
	}

	if err := schemas.Validate(schemas.ResumeV1, []byte(response)); err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(response), &fields); err != nil {
		return nil, &ParseError{Message: "resume extraction returned malformed JSON", Cause: err}
	}

	return BuildResume(fields, rawText), nil
}

// BuildResume assembles a ResumeRecord from a loosely-typed field map.
// It is total: any field shape is absorbed by the coercion functions.
func BuildResume(fields map[string]any, rawText string) *types.ResumeRecord {
	record := &types.ResumeRecord{
		Contact: types.ContactInfo{
			Name:     Scalar(field(fields, "Name", "name"), "name", "full_name"),
			Email:    Scalar(field(fields, "Email", "email"), "email"),
			Phone:    Scalar(field(fields, "Phone", "phone"), "phone"),
			Address:  Scalar(field(fields, "Address", "address"), "address"),
			LinkedIn: Scalar(field(fields, "LinkedIn", "linkedin"), "linkedin", "url"),
			GitHub:   Scalar(field(fields, "GitHub", "github"), "github", "url"),
		},
		Summary:        Scalar(field(fields, "Summary", "summary"), "summary", "text"),
		Skills:         MergeSkills(List(field(fields, "Skills", "skills"))),
		Experience:     buildExperience(field(fields, "Experience", "experience")),
		Education:      buildEducation(field(fields, "Education", "education")),
		Certifications: List(field(fields, "Certifications", "certifications")),
		Languages:      List(field(fields, "Languages", "languages")),
		RawText:        rawText,
	}

	// Invalid emails are dropped rather than failing the pipeline.
	if record.Contact.Email != "" {
		if err := validate.Var(record.Contact.Email, "email"); err != nil {
			record.Contact.Email = ""
		}
	}

	return record
}

func buildExperience(value any) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	items, ok := reparseJSON(value).([]any)
	if !ok {
		return entries
	}
	for _, item := range items {
		exp, ok := reparseJSON(item).(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, types.ExperienceEntry{
			Company:     Scalar(field(exp, "Company", "company"), "name"),
			Position:    Scalar(field(exp, "Position", "position", "Title", "title"), "title"),
			Duration:    Scalar(field(exp, "Duration", "duration")),
			StartDate:   Scalar(field(exp, "StartDate", "start_date")),
			EndDate:     Scalar(field(exp, "EndDate", "end_date")),
			Description: List(field(exp, "Description", "description")),
			SkillsUsed:  List(field(exp, "SkillsUsed", "skills_used", "Skills", "skills")),
		})
	}
	return entries
}

func buildEducation(value any) []types.EducationEntry {
	entries := []types.EducationEntry{}
	items, ok := reparseJSON(value).([]any)
	if !ok {
		return entries
	}
	for _, item := range items {
		edu, ok := reparseJSON(item).(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, types.EducationEntry{
			Institution:    Scalar(field(edu, "Institution", "institution", "School", "school"), "name"),
			Degree:         Scalar(field(edu, "Degree", "degree")),
			Field:          Scalar(field(edu, "Field", "field")),
			GraduationDate: Scalar(field(edu, "GraduationDate", "graduation_date", "Year", "year")),
			GPA:            Scalar(field(edu, "GPA", "gpa")),
			Description:    List(field(edu, "Description", "description")),
		})
	}
	return entries
}
