package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildJob_CanonicalShapes(t *testing.T) {
	fields := map[string]any{
		"Title":           "Backend Engineer",
		"Company":         "Acme",
		"RequiredSkills":  "Go; Kubernetes; SQL",
		"PreferredSkills": []any{"Terraform"},
		"Keywords":        []any{"microservices", "Go", "APIs"},
	}

	job := BuildJob(fields, "raw posting")

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, []string{"Go", "Kubernetes", "SQL"}, job.RequiredSkills)
	assert.Equal(t, []string{"Terraform"}, job.PreferredSkills)
	assert.Equal(t, []string{"microservices", "Go", "APIs"}, job.Keywords)
	assert.Equal(t, "raw posting", job.RawText)
}

func TestBuildJob_KeywordOrderPreservedOnDedup(t *testing.T) {
	fields := map[string]any{
		"keywords": []any{"Go", "APIs", "go", "Cloud", "apis"},
	}

	job := BuildJob(fields, "")

	// First occurrence wins; extraction relevance order is preserved.
	assert.Equal(t, []string{"Go", "APIs", "Cloud"}, job.Keywords)
}

func TestBuildJob_EmptyInput(t *testing.T) {
	job := BuildJob(map[string]any{}, "")

	assert.NotNil(t, job.RequiredSkills)
	assert.NotNil(t, job.Keywords)
	assert.Empty(t, job.Title)
}
