// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"folio/internal/contact"
	"folio/internal/middleware"
	"folio/internal/render"
	"folio/internal/session"
	"folio/internal/view"
)

// Auth groups the mock login handlers. The stored token is a placeholder
// and is never validated against a backend.
type Auth struct {
	pages
	sessions *session.Store
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, content view.Source, contacts *contact.Store, sessions *session.Store, owner string) *Auth {
	return &Auth{
		pages:    pages{renderer: renderer, content: content, contacts: contacts, owner: owner},
		sessions: sessions,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already holding a token: go straight to the admin page.
	if middleware.SessionFromCtx(r.Context()).Authenticated() {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	a.loginForm(w, r, "", "")
}

// LoginSubmit checks the demo credentials and stores the token.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.FormValue("username")
	password := r.FormValue("password")

	if msg := validateLogin(username, password); msg != "" {
		a.loginForm(w, r, username, msg)
		return
	}

	token, err := view.CheckCredentials(username, password)
	if err == nil {
		err = a.storeToken(ctx, w, r, token)
	}
	if err != nil {
		if !errors.Is(err, view.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err, "request_id", middleware.RequestIDFromCtx(ctx))
		}
		a.loginForm(w, r, username, view.LoginMessage(err))
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Admin renders the placeholder admin page.
func (a *Auth) Admin(w http.ResponseWriter, r *http.Request) {
	a.page(w, r, "admin", "Admin", nil)
}

// Logout drops the token but keeps the rest of the visitor's session,
// such as the contact panel state.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if sess := middleware.SessionFromCtx(ctx); sess != nil {
		next := *sess
		next.Token = ""
		if err := a.sessions.Update(ctx, r, &next); err != nil {
			slog.Error("logout failed", "error", err, "request_id", middleware.RequestIDFromCtx(ctx))
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *Auth) storeToken(ctx context.Context, w http.ResponseWriter, r *http.Request, token string) error {
	data := &session.Data{}
	if sess := middleware.SessionFromCtx(ctx); sess != nil {
		copied := *sess
		data = &copied
	}
	data.Token = token
	return a.sessions.Save(ctx, w, r, data)
}

func (a *Auth) loginForm(w http.ResponseWriter, r *http.Request, username, msg string) {
	form := view.LoginForm{
		Username:  username,
		Error:     msg,
		CSRFToken: middleware.CSRFTokenFromCtx(r.Context()),
	}
	a.page(w, r, "login", "Sign In", func(context.Context) any { return form })
}
