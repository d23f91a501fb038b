package utils

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var (
	mdLinkPattern   = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	mdMarkupPattern = regexp.MustCompile("(?m)^#+\\s*|[*_>`~]")
	spacePattern    = regexp.MustCompile(`\s+`)
)

// RenderMarkdown converts article and page bodies to HTML.
func RenderMarkdown(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Excerpt returns the first length runes of md as plain text.
func Excerpt(md string, length int) string {
	text := mdLinkPattern.ReplaceAllString(md, "$1")
	text = mdMarkupPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))

	runes := []rune(text)
	if len(runes) > length {
		return string(runes[:length]) + "..."
	}
	return text
}
