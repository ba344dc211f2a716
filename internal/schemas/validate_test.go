package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeAcceptsLooseFields(t *testing.T) {
	doc := []byte(`{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"summary": null,
		"experience": "Senior Engineer at Acme",
		"skills": ["Go", "Python"],
		"extra_field": 42
	}`)

	assert.NoError(t, Validate(ResumeV1, doc))
}

func TestValidateResumeRejectsNonObject(t *testing.T) {
	err := Validate(ResumeV1, []byte(`["not", "an", "object"]`))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ResumeV1, verr.Schema)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateJobAcceptsLooseFields(t *testing.T) {
	doc := []byte(`{
		"title": "Backend Engineer",
		"required_skills": "Go, PostgreSQL",
		"keywords": ["go", "api"]
	}`)

	assert.NoError(t, Validate(JobV1, doc))
}

func TestValidateMalformedJSON(t *testing.T) {
	err := Validate(ResumeV1, []byte(`{"name": `))
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "malformed JSON is not a schema violation")
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("nope.json", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidationErrorMessageListsFields(t *testing.T) {
	verr := &ValidationError{
		Schema: ResumeV1,
		Errors: []FieldError{{Field: "experience", Message: "invalid type"}},
	}
	assert.Contains(t, verr.Error(), "experience")
	assert.Contains(t, verr.Error(), ResumeV1)
}
