// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portfolio site.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/handlers"
	"folio/internal/middleware"
	"folio/internal/session"
)

// Options tune the middleware around the routes.
type Options struct {
	// SecureCookies marks the CSRF cookie Secure; enable behind TLS.
	SecureCookies bool

	// LoginLimiter throttles login submits per client IP. Nil disables it.
	LoginLimiter *middleware.RateLimiter

	// Static is served under /static/. Nil disables it.
	Static fs.FS
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, site *handlers.Site, auth *handlers.Auth, contact *handlers.Contact, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check, no CSRF.
	r.Get("/health", healthHandler)

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(opts.Static)))
	}

	// Reveal cascades stream for as long as the page is open.
	r.Get("/reveal/{page}", handlers.Reveal)

	// Pages and fragments, never cached, CSRF protected.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		r.Get("/", site.Home)
		r.Get("/achievements/more", site.AchievementsMore)
		r.Get("/about", site.About)
		r.Get("/products", site.Products)
		r.Get("/products/{id}/description", site.ProductDescription)
		r.Get("/stats", site.Stats)
		r.Get("/blog", site.Blog)
		r.Get("/resume", site.Resume)

		r.Post("/contact/toggle", contact.Toggle)
		r.Post("/contact/open", contact.Open)

		r.Get("/login", auth.LoginPage)
		if opts.LoginLimiter != nil {
			r.With(opts.LoginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		} else {
			r.Post("/login", auth.LoginSubmit)
		}
		r.Post("/logout", auth.Logout)

		r.With(middleware.RequireToken).Get("/admin", auth.Admin)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
