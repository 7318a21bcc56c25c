// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"folio/internal/session"
)

// LoginPath is where RequireToken sends visitors without a token.
const LoginPath = "/login"

type sessionKey struct{}

// WithSession returns a copy of ctx carrying data.
func WithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, sessionKey{}, data)
}

// SessionFromCtx returns the session LoadSession found, or nil.
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(sessionKey{}).(*session.Data)
	return data
}

// LoadSession attaches the visitor's session to the request context when
// one exists. It never rejects a request: a backend failure is logged and
// the visitor is served as anonymous.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			switch {
			case err != nil:
				slog.Warn("session load failed", "error", err, "request_id", RequestIDFromCtx(r.Context()))
			case data != nil:
				r = r.WithContext(WithSession(r.Context(), data))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireToken sends visitors without a login token to LoginPath. HTMX
// requests get an HX-Redirect so the whole page navigates. It relies on
// LoadSession running first.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromCtx(r.Context()).Authenticated() {
			next.ServeHTTP(w, r)
			return
		}
		if isHTMX(r) {
			w.Header().Set("HX-Redirect", LoginPath)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.Redirect(w, r, LoginPath, http.StatusSeeOther)
	})
}
