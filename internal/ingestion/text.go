package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace     = regexp.MustCompile(`\s+`)
	excessBlanks   = regexp.MustCompile(`\n\n\n+`)
	controlRunes   = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
	bulletPrefixes = []string{"- ", "* ", "• ", "· "}
)

// CleanText normalizes extracted document text while preserving line
// structure: line endings become LF, control characters are dropped,
// runs of spaces collapse, and blank-line runs are capped at one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = controlRunes.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses internal whitespace but keeps bullet markers and
// leading indentation intact so section structure survives.
func cleanLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			body := multiSpace.ReplaceAllString(strings.TrimSpace(trimmed[len(prefix):]), " ")
			return strings.Repeat(" ", indent) + prefix + body
		}
	}

	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
