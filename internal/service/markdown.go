package service

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// MarkdownRenderer turns free-text notes into HTML.
type MarkdownRenderer interface {
	Render(src string) (string, error)
}

// Markdown renders GitHub-flavoured Markdown. Raw HTML in the source is escaped.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a Markdown renderer.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Table,
				extension.TaskList,
				extension.Strikethrough,
				extension.Linkify,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts src to HTML. Empty input renders to an empty string.
func (m *Markdown) Render(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", WrapError(err, "render markdown")
	}
	return buf.String(), nil
}
