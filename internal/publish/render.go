package publish

import (
	"html"
	"strings"
)

// RenderOptions controls document rendering.
type RenderOptions struct {
	// Raw interpolates title and content without HTML escaping.
	Raw bool
}

const documentHead = `<!DOCTYPE html>
<html lang="zh">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>`

const documentStyle = `</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            padding: 20px;
            max-width: 800px;
            margin: auto;
        }

        h1 {
            color: #333;
        }

        p {
            line-height: 1.6;
        }
    </style>
</head>
<body>
`

// RenderHTML builds the published HTML page. Newlines in content become <br>.
func RenderHTML(s Submission, opts RenderOptions) string {
	title, content := s.Title, normalizeNewlines(s.Content)
	if !opts.Raw {
		title = html.EscapeString(title)
		content = html.EscapeString(content)
	}
	content = strings.ReplaceAll(content, "\n", "<br>")

	var b strings.Builder
	b.WriteString(documentHead)
	b.WriteString(title)
	b.WriteString(documentStyle)
	b.WriteString("    <h1>" + title + "</h1>\n")
	b.WriteString("    <p>" + content + "</p>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// RenderMarkdown builds the Markdown source file: "# title", blank line, content.
func RenderMarkdown(s Submission) string {
	return "# " + s.Title + "\n\n" + normalizeNewlines(s.Content)
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
