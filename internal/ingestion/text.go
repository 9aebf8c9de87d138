package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t]+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
	bulletGlyphs    = []string{"• ", "· ", "▪ ", "◦ ", "– "}
)

// CleanText normalizes pasted résumé text before it is sent for reformatting.
// Line structure is kept; only spacing, line endings and bullet glyphs change.
func CleanText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, " ", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = excessiveBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims trailing space, collapses inner runs of spaces and
// rewrites decorative bullets as Markdown list items. Leading indentation survives.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}
	indent := len(line) - len(trimmed)

	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			trimmed = "- " + strings.TrimPrefix(trimmed, glyph)
			break
		}
	}

	trimmed = multiSpace.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + trimmed
	}
	return trimmed
}
