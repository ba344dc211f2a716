package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResume_CanonicalShapes(t *testing.T) {
	fields := map[string]any{
		"Name":    "Jane Doe",
		"Email":   "jane@example.com",
		"Summary": `{"summary": "Experienced engineer."}`,
		"Skills":  "Go, SQL",
		"Experience": []any{
			map[string]any{
				"Company":     "Acme",
				"Position":    "Engineer",
				"Description": "Built APIs\n• Cut latency 40%",
			},
		},
		"Certifications": "AWS Cert\n• TF Cert",
		"Languages":      nil,
	}

	record := BuildResume(fields, "raw resume text")

	assert.Equal(t, "Jane Doe", record.Contact.Name)
	assert.Equal(t, "jane@example.com", record.Contact.Email)
	assert.Equal(t, "Experienced engineer.", record.Summary)
	assert.Equal(t, []string{"Go", "SQL"}, record.Skills)
	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Acme", record.Experience[0].Company)
	assert.Equal(t, []string{"Built APIs", "Cut latency 40%"}, record.Experience[0].Description)
	assert.Equal(t, []string{"AWS Cert", "TF Cert"}, record.Certifications)
	assert.Equal(t, []string{}, record.Languages)
	assert.Equal(t, "raw resume text", record.RawText)
}

func TestBuildResume_LowercaseKeysAndInvalidEmail(t *testing.T) {
	fields := map[string]any{
		"name":   "Jane",
		"email":  "not-an-email",
		"skills": []any{"python", "Python", "SQL"},
	}

	record := BuildResume(fields, "")

	assert.Equal(t, "Jane", record.Contact.Name)
	assert.Empty(t, record.Contact.Email, "invalid email is dropped, not fatal")
	assert.Equal(t, []string{"Python", "SQL"}, record.Skills)
}

func TestBuildResume_JSONEncodedExperience(t *testing.T) {
	fields := map[string]any{
		"Experience": `[{"Company": "Acme", "Description": ["Did things"]}]`,
	}

	record := BuildResume(fields, "")

	assert.Len(t, record.Experience, 1)
	assert.Equal(t, "Acme", record.Experience[0].Company)
	assert.Equal(t, []string{"Did things"}, record.Experience[0].Description)
}

func TestBuildResume_EmptyInput(t *testing.T) {
	record := BuildResume(map[string]any{}, "")

	assert.NotNil(t, record.Skills)
	assert.NotNil(t, record.Experience)
	assert.NotNil(t, record.Education)
	assert.NotNil(t, record.Certifications)
}

func TestBuildEducation_LiteralNullDescription(t *testing.T) {
	fields := map[string]any{
		"Education": []any{
			map[string]any{
				"Institution": "State University",
				"Degree":      "BSc",
				"GPA":         3.8,
				"Description": "null",
			},
		},
	}

	record := BuildResume(fields, "")

	assert.Len(t, record.Education, 1)
	assert.Equal(t, "State University", record.Education[0].Institution)
	assert.Equal(t, "3.8", record.Education[0].GPA)
	assert.Equal(t, []string{}, record.Education[0].Description)
}
