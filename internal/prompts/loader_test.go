package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKnownPrompt(t *testing.T) {
	prompt, err := Get("parsing.json", "extract-resume-system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "resume parser")
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("parsing.json", "no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("parsing.json", "no-such-key")
	})
}

func TestFormatReplacesPlaceholders(t *testing.T) {
	result := Format("Parse this resume text:\n\n{{.ResumeText}}", map[string]string{
		"ResumeText": "Jane Doe, Engineer",
	})
	assert.Equal(t, "Parse this resume text:\n\nJane Doe, Engineer", result)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "yes"})
	assert.Equal(t, "yes and {{.Unknown}}", result)
}

func TestAllReferencedKeysExist(t *testing.T) {
	required := map[string][]string{
		"parsing.json": {
			"extract-resume-system", "extract-resume-user",
			"extract-job-system", "extract-job-user",
		},
		"optimizing.json": {
			"optimize-summary-system", "optimize-summary-user",
			"optimize-skills-system", "optimize-skills-user",
			"optimize-experience-system", "optimize-experience-user",
			"optimize-experience-batch-system", "optimize-experience-batch-user",
		},
	}

	for filename, keys := range required {
		available, err := List(filename)
		require.NoError(t, err)
		for _, key := range keys {
			assert.Contains(t, available, key, "%s missing %s", filename, key)
		}
	}
}
