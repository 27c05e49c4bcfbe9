package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t]+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes decoded resume text while preserving line structure.
// Line endings are normalized to LF, in-line runs of whitespace collapse to
// single spaces, and blank-line runs shrink to at most one blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = multiSpace.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlanks.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
