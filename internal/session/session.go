// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session keeps per-visitor state behind an opaque cookie. The
// payload lives as JSON in a Backend (Valkey in production) and expires
// with the backend key.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	CookieName = "folio_session"
	DefaultTTL = 24 * time.Hour

	keyPrefix = "session:"
	idBytes   = 32
)

// MockToken is the placeholder credential stored after a demo login.
const MockToken = "mock-token"

var errNoCookie = errors.New("session: request has no session cookie")

// Data is the JSON payload kept per visitor.
type Data struct {
	Token       string    `json:"token,omitempty"`
	ContactOpen bool      `json:"contact_open"`
	CreatedAt   time.Time `json:"created_at"`
}

// Authenticated reports whether a login token is present.
func (d *Data) Authenticated() bool {
	return d != nil && d.Token != ""
}

// Store reads and writes sessions through a Backend.
type Store struct {
	backend Backend
	ttl     time.Duration
	secure  bool
}

// NewStore returns a Store over backend. secure sets the Secure cookie
// attribute and belongs behind TLS.
func NewStore(backend Backend, secure bool) *Store {
	return &Store{backend: backend, ttl: DefaultTTL, secure: secure}
}

// Create writes data under a fresh random ID and sets the cookie.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	id := hex.EncodeToString(buf)

	data.CreatedAt = time.Now()
	if err := s.write(ctx, id, data); err != nil {
		return "", err
	}
	http.SetCookie(w, s.cookie(id, int(s.ttl.Seconds())))
	return id, nil
}

// Get returns the visitor's session, or nil when the request carries no
// cookie or the key has expired.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	_, data, err := s.lookup(ctx, r)
	if errors.Is(err, errNoCookie) {
		return nil, nil
	}
	return data, err
}

// Update overwrites the session named by the request cookie and restarts
// its TTL.
func (s *Store) Update(ctx context.Context, r *http.Request, data *Data) error {
	id, ok := cookieID(r)
	if !ok {
		return fmt.Errorf("session update: %w", errNoCookie)
	}
	return s.write(ctx, id, data)
}

// Save updates the live session or creates one when there is none. The
// original CreatedAt is kept.
func (s *Store) Save(ctx context.Context, w http.ResponseWriter, r *http.Request, data *Data) error {
	id, existing, err := s.lookup(ctx, r)
	switch {
	case errors.Is(err, errNoCookie):
	case err != nil:
		return err
	case existing != nil:
		data.CreatedAt = existing.CreatedAt
		return s.write(ctx, id, data)
	}
	_, err = s.Create(ctx, w, data)
	return err
}

// Destroy deletes the session and expires the cookie. A request without a
// cookie is a no-op.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, ok := cookieID(r)
	if !ok {
		return nil
	}
	if err := s.backend.Del(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	http.SetCookie(w, s.cookie("", -1))
	return nil
}

// lookup resolves the cookie to its ID and payload. An expired key yields
// the ID with nil data.
func (s *Store) lookup(ctx context.Context, r *http.Request) (string, *Data, error) {
	id, ok := cookieID(r)
	if !ok {
		return "", nil, errNoCookie
	}

	raw, err := s.backend.Get(ctx, keyPrefix+id)
	if errors.Is(err, ErrNotFound) {
		return id, nil, nil
	}
	if err != nil {
		return id, nil, fmt.Errorf("session get: %w", err)
	}

	data := new(Data)
	if err := json.Unmarshal(raw, data); err != nil {
		return id, nil, fmt.Errorf("session decode: %w", err)
	}
	return id, data, nil
}

func (s *Store) write(ctx context.Context, id string, data *Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.backend.Set(ctx, keyPrefix+id, raw, s.ttl); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}

func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func cookieID(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
