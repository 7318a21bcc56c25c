// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the portfolio pages.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"folio/internal/middleware"
	"folio/internal/reveal"
	"folio/internal/session"
	"folio/internal/view"
)

//go:embed templates/site/*.html
var siteFS embed.FS

const (
	siteDir      = "templates/site/"
	baseFile     = "base.html"
	partialsFile = "partials.html"
)

// PageData holds all data passed to page templates.
type PageData struct {
	Title       string        // Page title for <title> tag
	Chrome      view.Chrome   // Navigation and contact panel
	Session     *session.Data // Current visitor session (nil if none)
	CSRFToken   string        // CSRF token for forms and HTMX headers
	AssetPrefix string        // Prefix for /static URLs
	Data        any           // Page-specific view
}

// ContactPanel is the data for the floating contact partial. It is
// rendered inside every page and on its own after a toggle.
type ContactPanel struct {
	Contact   *view.FloatingContact
	CSRFToken string
}

// ContactPanel returns the contact partial data for this page.
func (p *PageData) ContactPanel() ContactPanel {
	return ContactPanel{Contact: p.Chrome.Contact, CSRFToken: p.CSRFToken}
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates   map[string]*template.Template
	partials    *template.Template
	funcMap     template.FuncMap
	assetPrefix string
}

// standaloneTemplates lists templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"blog": true,
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. Each page template is paired with the base layout and the
// shared partials. When devMode is true, templates use CDN-hosted assets
// (TailwindCSS, HTMX); when false, they reference compiled local static
// files under assetPrefix.
func New(devMode bool, assetPrefix string) (*Renderer, error) {
	r := &Renderer{
		templates:   make(map[string]*template.Template),
		assetPrefix: strings.TrimRight(assetPrefix, "/"),
	}
	r.funcMap = template.FuncMap{
		// deref safely dereferences a string pointer for use in templates.
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		// isDev returns true when the app runs in development mode.
		// Used by templates to conditionally load CDN vs local assets.
		"isDev": func() bool {
			return devMode
		},
		// asset prefixes a /static path for production deployments.
		"asset": func(path string) string {
			return r.assetPrefix + path
		},
		"join":      strings.Join,
		"revealURL": RevealURL,
		"navClass": func(active bool) string {
			if active {
				return "text-blue-600 border-b-2 border-blue-600"
			}
			return "text-gray-600 hover:text-blue-600"
		},
	}

	entries, err := siteFS.ReadDir(strings.TrimSuffix(siteDir, "/"))
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r.partials, err = template.New(partialsFile).Funcs(r.funcMap).ParseFS(siteFS, siteDir+partialsFile)
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == baseFile || name == partialsFile {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		if standaloneTemplates[tmplName] {
			tmpl, err = template.New(name).Funcs(r.funcMap).ParseFS(
				siteFS, siteDir+name, siteDir+partialsFile,
			)
		} else {
			tmpl, err = template.New(baseFile).Funcs(r.funcMap).ParseFS(
				siteFS, siteDir+baseFile, siteDir+partialsFile, siteDir+name,
			)
		}
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full page or an HTMX partial, depending on the request
// headers. For HTMX requests, only the "content" block is sent. For full
// page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from context (set by CSRF middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	data.AssetPrefix = rn.assetPrefix

	// Inject session from context.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	execName := baseFile
	switch {
	case isHTMX(r) && !standaloneTemplates[name]:
		// HTMX request: render only the content fragment.
		execName = "content"
	case standaloneTemplates[name]:
		// Standalone pages use their own root template (not base.html).
		execName = name + ".html"
	}

	rn.write(w, r, tmpl, execName, data)
}

// Partial renders a named fragment from partials.html, used for HTMX
// swaps such as the next achievements batch or a description toggle.
func (rn *Renderer) Partial(w http.ResponseWriter, r *http.Request, name string, data any) {
	if rn.partials.Lookup(name) == nil {
		http.Error(w, fmt.Sprintf("partial %q not found", name), http.StatusInternalServerError)
		return
	}
	rn.write(w, r, rn.partials, name, data)
}

// write buffers the output so a failing template never leaves a
// half-written page behind a 200 status.
func (rn *Renderer) write(w http.ResponseWriter, r *http.Request, tmpl *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, name, data); err != nil {
		slog.Error("template execution failed",
			"template", name,
			"error", err,
			"request_id", middleware.RequestIDFromCtx(r.Context()),
		)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// RevealURL is the event stream that drives a page's reveal cascade.
// Only the ids travel; the delays are recomputed server side.
func RevealURL(page string, steps []reveal.Step) string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	u := "/reveal/" + url.PathEscape(page)
	if len(ids) > 0 {
		u += "?ids=" + url.QueryEscape(strings.Join(ids, ","))
	}
	return u
}
