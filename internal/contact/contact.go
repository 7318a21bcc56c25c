// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package contact owns the open/closed state of the floating contact
// panel. The navigation bar and the floating widget both read and change
// it through a single Store, which keeps the flag in the visitor's
// session.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"folio/internal/session"
)

// State is the contact panel flag.
type State struct {
	Open bool
}

// OpenPanel opens the panel. Opening an open panel is a no-op.
func (s *State) OpenPanel() { s.Open = true }

// Toggle flips the panel between open and closed.
func (s *State) Toggle() { s.Open = !s.Open }

// Store loads and persists State per visitor.
type Store struct {
	sessions *session.Store
}

// NewStore creates a Store over the session store.
func NewStore(sessions *session.Store) *Store {
	return &Store{sessions: sessions}
}

// Load returns the visitor's panel state. A missing or unreadable session
// yields a closed panel.
func (c *Store) Load(ctx context.Context, r *http.Request) State {
	data, err := c.sessions.Get(ctx, r)
	if err != nil {
		slog.Warn("contact state unavailable", "error", err)
		return State{}
	}
	if data == nil {
		return State{}
	}
	return State{Open: data.ContactOpen}
}

// Apply loads the state, applies change and persists the result,
// creating a session for first-time visitors.
func (c *Store) Apply(ctx context.Context, w http.ResponseWriter, r *http.Request, change func(*State)) (State, error) {
	data, err := c.sessions.Get(ctx, r)
	if err != nil {
		return State{}, fmt.Errorf("contact load: %w", err)
	}
	if data == nil {
		data = &session.Data{}
	}

	st := State{Open: data.ContactOpen}
	change(&st)
	data.ContactOpen = st.Open

	if err := c.sessions.Save(ctx, w, r, data); err != nil {
		return State{}, fmt.Errorf("contact save: %w", err)
	}
	return st, nil
}
