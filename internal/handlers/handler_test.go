// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Content comes from the in-memory document store seeded with the
// development fixtures; sessions use the in-memory backend.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"folio/internal/contact"
	"folio/internal/database"
	"folio/internal/docstore"
	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/render"
	"folio/internal/session"
	"folio/internal/store"
)

const (
	testOwner     = "Arpit Goyal"
	testBlogURL   = "https://arpitgoyalkgp.medium.com/"
	testResumeURL = "https://drive.google.com/file/d/abc123/view?usp=sharing"
)

// failingStore simulates a document store whose every query fails.
type failingStore struct{}

func (failingStore) Find(context.Context, docstore.Query) ([]docstore.Document, error) {
	return nil, errors.New("store unavailable")
}

func (failingStore) Insert(context.Context, string, map[string]any) (string, error) {
	return "", errors.New("store unavailable")
}

func (failingStore) Close() error { return nil }

// seededStore returns a memory store holding the development fixtures.
func seededStore(t *testing.T) *docstore.MemoryStore {
	t.Helper()
	docs := docstore.NewMemoryStore()
	if err := database.Seed(context.Background(), docs); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return docs
}

// harness wires the handler groups into a router shaped like the
// production one.
type harness struct {
	content  *store.ContentStore
	sessions *session.Store
	handler  http.Handler
}

func newHarness(t *testing.T, docs docstore.Store) *harness {
	t.Helper()

	renderer, err := render.New(true, "")
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	content := store.NewContentStore(docs)
	sessions := session.NewStore(session.NewMemoryBackend(), false)
	contacts := contact.NewStore(sessions)

	site := NewSite(renderer, content, contacts, SiteOptions{
		Owner:     testOwner,
		BlogURL:   testBlogURL,
		ResumeURL: testResumeURL,
	})
	auth := NewAuth(renderer, content, contacts, sessions, testOwner)
	contactHandlers := NewContact(renderer, content, contacts)

	r := chi.NewRouter()
	r.Use(middleware.LoadSession(sessions))
	r.Get("/reveal/{page}", Reveal)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(false))
		r.Get("/", site.Home)
		r.Get("/achievements/more", site.AchievementsMore)
		r.Get("/about", site.About)
		r.Get("/products", site.Products)
		r.Get("/products/{id}/description", site.ProductDescription)
		r.Get("/stats", site.Stats)
		r.Get("/blog", site.Blog)
		r.Get("/resume", site.Resume)
		r.Post("/contact/toggle", contactHandlers.Toggle)
		r.Post("/contact/open", contactHandlers.Open)
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)
		r.With(middleware.RequireToken).Get("/admin", auth.Admin)
	})

	return &harness{content: content, sessions: sessions, handler: r}
}

// client keeps cookies between requests and echoes the CSRF token on
// state-changing requests.
type client struct {
	t       *testing.T
	h       http.Handler
	cookies map[string]*http.Cookie
}

func (h *harness) client(t *testing.T) *client {
	c := &client{t: t, h: h.handler, cookies: make(map[string]*http.Cookie)}
	c.get("/login") // obtain the CSRF cookie
	return c
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (c *client) htmx(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("HX-Request", "true")
	return c.do(req)
}

func (c *client) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	if req.Method != http.MethodGet {
		if ck, ok := c.cookies[middleware.CSRFCookieName]; ok {
			req.Header.Set(middleware.CSRFHeaderName, ck.Value)
		}
	}

	rr := httptest.NewRecorder()
	c.h.ServeHTTP(rr, req)

	for _, ck := range rr.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rr
}

// productByTitle finds a seeded product, failing the test if missing.
func (h *harness) productByTitle(t *testing.T, title string) models.Product {
	t.Helper()
	for _, p := range h.content.Products(context.Background()) {
		if p.Title == title {
			return p
		}
	}
	t.Fatalf("product %q not seeded", title)
	return models.Product{}
}

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("body should contain %q", want)
		}
	}
}

func assertNotContains(t *testing.T, body string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(body, u) {
			t.Errorf("body should not contain %q", u)
		}
	}
}
