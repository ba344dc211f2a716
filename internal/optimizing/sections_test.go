package optimizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSummary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Seasoned engineer with ten years of experience.", "Seasoned engineer with ten years of experience."},
		{"quoted", `"Seasoned engineer with ten years of experience."`, "Seasoned engineer with ten years of experience."},
		{"labeled", "Summary: Seasoned engineer with ten years of experience.", "Seasoned engineer with ten years of experience."},
		{"optimized label", "Optimized Summary: Seasoned engineer.", "Seasoned engineer."},
		{"fenced", "```\nSeasoned engineer.\n```", "Seasoned engineer."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanSummary(tt.input))
		})
	}
}

func TestParseBulletsStripsMarkersAndCaps(t *testing.T) {
	lines := []string{
		"- Led migration of billing platform to Kubernetes",
		"* Reduced deployment time by 40% with new CI pipeline",
		"1. Mentored four junior engineers on Go best practices",
		"short",
		"• Designed REST APIs serving 2M requests per day",
		"- Shipped real-time analytics dashboard used by 300 customers",
	}

	bullets := parseBullets(lines)

	assert.Len(t, bullets, maxBullets)
	assert.Equal(t, "Led migration of billing platform to Kubernetes", bullets[0])
	assert.Equal(t, "Reduced deployment time by 40% with new CI pipeline", bullets[1])
	assert.Equal(t, "Mentored four junior engineers on Go best practices", bullets[2])
	for _, b := range bullets {
		assert.Greater(t, len(b), minBulletLen)
	}
}

func TestParseBulletsDropsShortAndEmpty(t *testing.T) {
	assert.Empty(t, parseBullets([]string{"", "  ", "tiny", "```json"}))
}

func TestParseSkillList(t *testing.T) {
	skills := parseSkillList("Go, Python, 1. Kubernetes, \"PostgreSQL\", x, Terraform")

	assert.Equal(t, []string{"Go", "Python", "Kubernetes", "PostgreSQL", "Terraform"}, skills)
}

func TestParseSkillListCapsAtTwenty(t *testing.T) {
	parts := make([]string, 30)
	for i := range parts {
		parts[i] = "Skill" + string(rune('A'+i))
	}
	skills := parseSkillList(joinTop(parts, len(parts)))

	assert.Len(t, skills, maxSkills)
}

func TestParseSkillListRejectsOverlongEntries(t *testing.T) {
	long := "This is not a skill but a whole sentence that rambles on about accomplishments"
	skills := parseSkillList("Go, " + long)

	assert.Equal(t, []string{"Go"}, skills)
}
