// Package types defines the canonical data records shared across the
// optimization pipeline. All heterogeneous parser/LLM output is coerced
// into these shapes by the parsing package before any scoring happens.
package types

// ContactInfo holds contact details extracted from a résumé.
// Every field is optional; empty string means "not found".
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is a single work experience item.
// Description and SkillsUsed are always non-nil lists, even when the
// source supplied a bare string or a nested object.
type ExperienceEntry struct {
	Company     string   `json:"company,omitempty"`
	Position    string   `json:"position,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description []string `json:"description"`
	SkillsUsed  []string `json:"skills_used"`
}

// EducationEntry is a single education item.
type EducationEntry struct {
	Institution    string   `json:"institution,omitempty"`
	Degree         string   `json:"degree,omitempty"`
	Field          string   `json:"field,omitempty"`
	GraduationDate string   `json:"graduation_date,omitempty"`
	GPA            string   `json:"gpa,omitempty"`
	Description    []string `json:"description"`
}

// ResumeRecord is the canonical in-memory résumé representation.
// RawText is captured once at ingestion and never rewritten.
type ResumeRecord struct {
	Contact        ContactInfo       `json:"contact_info"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
	RawText        string            `json:"raw_text"`
}

// Clone returns a deep copy of the record. The content optimizer works
// on a clone so the original survives as an audit trail.
func (r *ResumeRecord) Clone() *ResumeRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Skills = cloneStrings(r.Skills)
	out.Certifications = cloneStrings(r.Certifications)
	out.Languages = cloneStrings(r.Languages)

	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Description = cloneStrings(exp.Description)
		exp.SkillsUsed = cloneStrings(exp.SkillsUsed)
		out.Experience[i] = exp
	}

	out.Education = make([]EducationEntry, len(r.Education))
	for i, edu := range r.Education {
		edu.Description = cloneStrings(edu.Description)
		out.Education[i] = edu
	}

	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
