package export

import (
	"bytes"
	"html/template"

	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderHTML converts buffer Markdown into an HTML fragment.
// Raw HTML embedded in the Markdown is omitted from the output.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", &RenderError{Message: "failed to convert markdown", Cause: err}
	}
	return buf.String(), nil
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; font-size: 11pt; line-height: 1.4; color: #111; margin: 0; }
h1 { font-size: 20pt; margin: 0 0 4pt; }
h2 { font-size: 13pt; border-bottom: 1px solid #999; margin: 12pt 0 4pt; }
h3 { font-size: 11pt; margin: 8pt 0 2pt; }
ul { margin: 2pt 0; padding-left: 16pt; }
p { margin: 4pt 0; }
a { color: #111; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

var docTmpl = template.Must(template.New("document").Parse(documentTemplate))

// RenderDocument wraps the rendered buffer in a standalone, print-styled HTML page
func RenderDocument(buf types.Buffer) (string, error) {
	body, err := RenderHTML(buf.Content)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	err = docTmpl.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{
		Title: buf.Kind.Title(),
		Body:  template.HTML(body), //nolint:gosec // produced by goldmark with raw HTML disabled
	})
	if err != nil {
		return "", &RenderError{Message: "failed to execute document template", Cause: err}
	}
	return out.String(), nil
}
