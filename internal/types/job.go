package types

// JobRecord is the canonical job posting representation.
// Keywords are ordered by extraction relevance; that order is preserved
// through the gap analyzer so suggestion ranking stays meaningful.
type JobRecord struct {
	Title                 string   `json:"title,omitempty"`
	Company               string   `json:"company,omitempty"`
	Location              string   `json:"location,omitempty"`
	Description           string   `json:"description,omitempty"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	ExperienceLevel       string   `json:"experience_level,omitempty"`
	EducationRequirements []string `json:"education_requirements"`
	Keywords              []string `json:"keywords"`
	RawText               string   `json:"raw_text"`
}
