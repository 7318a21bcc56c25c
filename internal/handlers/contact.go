// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"folio/internal/contact"
	"folio/internal/middleware"
	"folio/internal/render"
	"folio/internal/view"
)

// Contact serves the shared contact panel. The navigation button and the
// floating widget both post here, so they always agree on its state.
type Contact struct {
	renderer *render.Renderer
	content  view.Source
	contacts *contact.Store
}

// NewContact creates a new Contact handler group.
func NewContact(renderer *render.Renderer, content view.Source, contacts *contact.Store) *Contact {
	return &Contact{renderer: renderer, content: content, contacts: contacts}
}

// Toggle flips the panel.
func (c *Contact) Toggle(w http.ResponseWriter, r *http.Request) {
	c.apply(w, r, (*contact.State).Toggle)
}

// Open opens the panel; it stays open if it already was.
func (c *Contact) Open(w http.ResponseWriter, r *http.Request) {
	c.apply(w, r, (*contact.State).OpenPanel)
}

func (c *Contact) apply(w http.ResponseWriter, r *http.Request, change func(*contact.State)) {
	ctx := r.Context()

	st, err := c.contacts.Apply(ctx, w, r, change)
	if err != nil {
		slog.Error("contact state update failed",
			"error", err,
			"request_id", middleware.RequestIDFromCtx(ctx),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
		return
	}

	c.renderer.Partial(w, r, "contact", render.ContactPanel{
		Contact:   view.NewFloatingContact(c.content.PersonalDetails(ctx), st.Open),
		CSRFToken: middleware.CSRFTokenFromCtx(ctx),
	})
}

// backTo returns the same-site page the form was posted from, or "/".
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || ref.Host != r.Host {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
