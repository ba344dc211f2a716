package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"golang", "Go"},
		{"  js ", "JavaScript"},
		{"K8S", "Kubernetes"},
		{"python", "Python"},
		{"Node.js", "Node.js"},
		{"machine learning", "machine learning"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSkillName(tt.input), "input %q", tt.input)
	}
}

func TestMergeSkills_DeduplicatesCaseInsensitively(t *testing.T) {
	got := MergeSkills([]string{"Python", "SQL"}, []string{"python", "Go"})
	assert.Equal(t, []string{"Python", "SQL", "Go"}, got)
}

func TestMergeSkills_NormalizesVariants(t *testing.T) {
	got := MergeSkills([]string{"golang"}, []string{"Go", "k8s"})
	assert.Equal(t, []string{"Go", "Kubernetes"}, got)
}

func TestMergeSkills_Empty(t *testing.T) {
	assert.Empty(t, MergeSkills(nil, []string{"", "  "}))
}
