// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts about-page sections the owner marked as
// Markdown. Raw HTML inside the source is emitted as-is and never
// sanitized. No typographic rewriting is applied, so quotes, dashes and
// line breaks come out as written.
package markdown

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultStyle is the chroma theme used for fenced code blocks.
const DefaultStyle = "dracula"

// Renderer converts Markdown with a fixed goldmark configuration. It is
// safe for concurrent use.
type Renderer struct {
	gm goldmark.Markdown
}

// New returns a Renderer highlighting code with the named chroma style.
func New(style string) *Renderer {
	return &Renderer{gm: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(highlighting.WithStyle(style)),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)}
}

// Render converts source to HTML.
func (r *Renderer) Render(source string) (template.HTML, error) {
	var out bytes.Buffer
	if err := r.gm.Convert([]byte(source), &out); err != nil {
		return "", err
	}
	return template.HTML(out.String()), nil
}

var std = New(DefaultStyle)

// ToHTML converts source with the default Renderer. Should conversion
// fail, the source is inserted verbatim.
func ToHTML(source string) template.HTML {
	out, err := std.Render(source)
	if err != nil {
		slog.Warn("markdown render failed", "error", err)
		return template.HTML(source)
	}
	return out
}
