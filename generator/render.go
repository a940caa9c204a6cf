package generator

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var poemMarkdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))

const markdownPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// RenderHTML renders poem text as a single paragraph with one <br> per line
// break. Every line is escaped first, so topic text is never read as markup.
func RenderHTML(text string) (string, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = escapeMarkdown(strings.TrimSpace(line))
	}
	var buf bytes.Buffer
	if err := poemMarkdown.Convert([]byte(strings.Join(lines, "\n")), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func escapeMarkdown(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune(markdownPunct, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
