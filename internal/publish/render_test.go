package publish

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHTML_HeadingAndLineBreaks(t *testing.T) {
	doc := RenderHTML(Submission{Title: "Hello World", Content: "line1\nline2"}, RenderOptions{})

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Hello World</title>")
	assert.Contains(t, doc, "<h1>Hello World</h1>")
	assert.Contains(t, doc, "<p>line1<br>line2</p>")
	assert.True(t, strings.HasSuffix(doc, "</html>\n"))
}

func TestRenderHTML_CRLF(t *testing.T) {
	doc := RenderHTML(Submission{Title: "t", Content: "a\r\nb\r\n\r\nc"}, RenderOptions{})
	assert.Contains(t, doc, "<p>a<br>b<br><br>c</p>")
}

func TestRenderHTML_EscapesByDefault(t *testing.T) {
	s := Submission{Title: `<script>alert("x")</script>`, Content: "a & b\n<i>c</i>"}

	doc := RenderHTML(s, RenderOptions{})
	assert.NotContains(t, doc, "<script>")
	assert.Contains(t, doc, "<h1>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</h1>")
	assert.Contains(t, doc, "<p>a &amp; b<br>&lt;i&gt;c&lt;/i&gt;</p>")

	raw := RenderHTML(s, RenderOptions{Raw: true})
	assert.Contains(t, raw, `<h1><script>alert("x")</script></h1>`)
	assert.Contains(t, raw, "<p>a & b<br><i>c</i></p>")
}

func TestRenderMarkdown(t *testing.T) {
	assert.Equal(t, "# Hello\n\nline1\nline2", RenderMarkdown(Submission{Title: "Hello", Content: "line1\r\nline2"}))
}
