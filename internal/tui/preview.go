package tui

import (
	"strings"
)

// renderPreview renders buffer Markdown for the terminal: headings are styled
// and list markers become bullets. Everything else is shown as written.
func renderPreview(content string) string {
	if strings.TrimSpace(content) == "" {
		return helpStyle.Render("(empty)")
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		switch {
		case strings.HasPrefix(trimmed, "# "):
			out = append(out, headingStyle.Render(strings.ToUpper(strings.TrimPrefix(trimmed, "# "))))
		case strings.HasPrefix(trimmed, "## "), strings.HasPrefix(trimmed, "### "):
			out = append(out, subheadingStyle.Render(strings.TrimLeft(trimmed, "# ")))
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			out = append(out, indent+"• "+stripEmphasis(trimmed[2:]))
		default:
			out = append(out, indent+stripEmphasis(trimmed))
		}
	}
	return strings.Join(out, "\n")
}

// stripEmphasis drops Markdown bold and italic markers
func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return s
}
