package optimizing

import (
	"regexp"
	"strings"
)

var (
	bulletPrefix    = regexp.MustCompile(`^[-*•‣]\s*`)
	numberedPrefix  = regexp.MustCompile(`^\d+[.)]\s*`)
	summaryLabel    = regexp.MustCompile(`(?i)^(optimized\s+)?summary:\s*`)
	codeFenceMarker = "```"
)

// cleanSummary strips wrapping quotes, labels and code fences the model
// sometimes adds around a summary.
func cleanSummary(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, codeFenceMarker)
	text = strings.TrimSuffix(text, codeFenceMarker)
	text = strings.TrimSpace(text)
	text = summaryLabel.ReplaceAllString(text, "")
	text = strings.Trim(text, `"'`)
	return strings.TrimSpace(text)
}

// parseBullets validates a rewritten bullet list: fences and bullet
// markers are stripped, entries shorter than the minimum are dropped,
// and the list is capped.
func parseBullets(lines []string) []string {
	var bullets []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, codeFenceMarker) {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")
		line = numberedPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if len(line) <= minBulletLen {
			continue
		}
		bullets = append(bullets, line)
		if len(bullets) == maxBullets {
			break
		}
	}
	return bullets
}

// parseSkillList splits a comma-separated model response into
// individual skills, dropping numbering, empty items, single
// characters and implausibly long entries. The list is capped.
func parseSkillList(response string) []string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, codeFenceMarker)
	response = strings.TrimSuffix(response, codeFenceMarker)

	var skills []string
	for _, part := range strings.Split(response, ",") {
		skill := strings.TrimSpace(part)
		skill = numberedPrefix.ReplaceAllString(skill, "")
		skill = strings.Trim(skill, `"'`)
		skill = strings.TrimSpace(skill)
		if len(skill) <= 1 || len(skill) > maxSkillLen {
			continue
		}
		skills = append(skills, skill)
		if len(skills) == maxSkills {
			break
		}
	}
	return skills
}
