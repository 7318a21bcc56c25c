// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
)

const (
	CSRFCookieName = "folio_csrf"
	CSRFHeaderName = "X-CSRF-Token" // sent by htmx via hx-headers on <body>
	CSRFFormField  = "csrf_token"   // hidden input on plain forms

	csrfTokenLength = 32
)

type csrfKey struct{}

// CSRFTokenFromCtx returns the token NewCSRF stored in ctx, or "".
func CSRFTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(csrfKey{}).(string)
	return token
}

// NewCSRF guards unsafe methods with a double-submit cookie. The visitor's
// token lives in a script-readable cookie; POST, PUT, PATCH and DELETE
// requests must echo it in CSRFHeaderName or CSRFFormField. The token is
// also put in the request context for templates.
func NewCSRF(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := csrfToken(w, r, secure)
			if err != nil {
				slog.Error("csrf token", "error", err, "request_id", RequestIDFromCtx(r.Context()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), csrfKey{}, token))

			if !safeMethod(r.Method) && !tokensMatch(token, submittedToken(r)) {
				slog.Warn("csrf rejected", "method", r.Method, "path", r.URL.Path, "request_id", RequestIDFromCtx(r.Context()))
				http.Error(w, "CSRF token mismatch", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// csrfToken returns the cookie token, issuing a new cookie when the
// request has none.
func csrfToken(w http.ResponseWriter, r *http.Request, secure bool) (string, error) {
	if c, err := r.Cookie(CSRFCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	token, err := generateCSRFToken()
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
	return token, nil
}

func submittedToken(r *http.Request) string {
	if v := r.Header.Get(CSRFHeaderName); v != "" {
		return v
	}
	return r.PostFormValue(CSRFFormField)
}

func tokensMatch(want, got string) bool {
	return got != "" && subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

func safeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
