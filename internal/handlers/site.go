// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers of the portfolio site.
package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/contact"
	"folio/internal/render"
	"folio/internal/transform"
	"folio/internal/view"
)

// pages is shared by every handler group that renders a full page. It
// loads the navigation and contact panel alongside the page content.
type pages struct {
	renderer *render.Renderer
	content  view.Source
	contacts *contact.Store
	owner    string
}

// page renders name after running the chrome fetch and load concurrently.
// load may be nil for pages without stored content.
func (p *pages) page(w http.ResponseWriter, r *http.Request, name, title string, load func(context.Context) any) {
	ctx := r.Context()
	open := p.contacts.Load(ctx, r).Open

	var (
		chrome view.Chrome
		data   any
	)
	fetches := []func(context.Context){
		func(ctx context.Context) {
			chrome = view.LoadChrome(ctx, p.content, p.owner, r.URL.Path, open)
		},
	}
	if load != nil {
		fetches = append(fetches, func(ctx context.Context) { data = load(ctx) })
	}
	view.Load(ctx, fetches...)

	p.renderer.Page(w, r, name, &render.PageData{Title: title, Chrome: chrome, Data: data})
}

// SiteOptions are the external links and branding of the site.
type SiteOptions struct {
	Owner     string
	BlogURL   string
	ResumeURL string
}

// Site groups the public portfolio pages.
type Site struct {
	pages
	blogURL   string
	resumeURL string
}

// NewSite creates a new Site handler group.
func NewSite(renderer *render.Renderer, content view.Source, contacts *contact.Store, opts SiteOptions) *Site {
	return &Site{
		pages:     pages{renderer: renderer, content: content, contacts: contacts, owner: opts.Owner},
		blogURL:   opts.BlogURL,
		resumeURL: opts.ResumeURL,
	}
}

// Home renders the achievements timeline. ?shown=N widens the first
// page, which is how Load More works without scripts.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	shown := parseShown(r.URL.Query().Get("shown"))
	s.page(w, r, "home", "Home", func(ctx context.Context) any {
		home := view.LoadHome(ctx, s.content)
		if shown > home.Cursor.Shown {
			home.Cursor = view.At(shown, len(home.Items))
		}
		return home
	})
}

// AchievementsMore returns the next timeline batch as an HTMX partial.
func (s *Site) AchievementsMore(w http.ResponseWriter, r *http.Request) {
	shown := parseShown(r.URL.Query().Get("shown"))
	home := view.LoadHome(r.Context(), s.content)
	s.renderer.Partial(w, r, "achievements_batch", home.More(shown))
}

// About renders skills, experience, education and about sections.
func (s *Site) About(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, "about", "About", func(ctx context.Context) any {
		return view.LoadAbout(ctx, s.content)
	})
}

// Products renders both carousels. ?expanded=a,b lists the descriptions
// shown in full.
func (s *Site) Products(w http.ResponseWriter, r *http.Request) {
	expanded := transform.ParseExpanded(r.URL.Query().Get("expanded"))
	s.page(w, r, "products", "My Products", func(ctx context.Context) any {
		return view.LoadProducts(ctx, s.content, expanded)
	})
}

// ProductDescription flips one description between its truncated and
// full form.
func (s *Site) ProductDescription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	product, ok := view.FindProduct(s.content.Products(r.Context()), id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	d := view.NewDescription(product.ID, product.Description, parseBudget(q.Get("budget")), parseExpandedFlag(q.Get("expanded")))
	s.renderer.Partial(w, r, "description", d)
}

// Stats renders the static career statistics.
func (s *Site) Stats(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, "stats", "Career Statistics", func(context.Context) any {
		return view.Stats()
	})
}

// Blog renders the redirect page to the external blog.
func (s *Site) Blog(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, "blog", "Redirecting to Blog", func(context.Context) any {
		return view.NewBlogRedirect(s.blogURL)
	})
}

// Resume sends the visitor to the hosted resume preview.
func (s *Site) Resume(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, view.ResumePreviewURL(s.resumeURL), http.StatusFound)
}
