// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package restapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Achievement as served by the REST backend.
type Achievement struct {
	ID          string  `json:"id,omitempty"`
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Link        *string `json:"link,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// Product as served by the REST backend. Its link fields differ from the
// document store shape.
type Product struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"github_url,omitempty"`
	LiveURL      *string  `json:"live_url,omitempty"`
	Featured     bool     `json:"featured"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

// BlogPost has no fixed schema on the backend.
type BlogPost map[string]any

// Collection is a list/create/update/delete resource rooted at path.
type Collection[T any] struct {
	c    *Client
	path string
	name string
}

// Achievements is the /achievements/ resource.
func (c *Client) Achievements() *Collection[Achievement] {
	return &Collection[Achievement]{c: c, path: "/achievements/", name: "achievement"}
}

// Products is the /products/ resource.
func (c *Client) Products() *Collection[Product] {
	return &Collection[Product]{c: c, path: "/products/", name: "product"}
}

// BlogPosts is the /blog/posts/ resource.
func (c *Client) BlogPosts() *Collection[BlogPost] {
	return &Collection[BlogPost]{c: c, path: "/blog/posts/", name: "blog post"}
}

// List fetches every item.
func (r *Collection[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.call(ctx, "fetch "+r.name+"s", http.MethodGet, r.path, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a new item and returns the stored version.
func (r *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	var out T
	err := r.c.call(ctx, "create "+r.name, http.MethodPost, r.path, item, &out, true)
	return out, err
}

// Update patches the item with id using the given partial fields.
func (r *Collection[T]) Update(ctx context.Context, id string, fields map[string]any) (T, error) {
	var out T
	err := r.c.call(ctx, "update "+r.name, http.MethodPatch, r.itemPath(id), fields, &out, true)
	return out, err
}

// Delete removes the item with id.
func (r *Collection[T]) Delete(ctx context.Context, id string) error {
	return r.c.call(ctx, "delete "+r.name, http.MethodDelete, r.itemPath(id), nil, nil, true)
}

// itemPath escapes id so it always names a single path segment.
func (r *Collection[T]) itemPath(id string) string {
	return r.path + url.PathEscape(id) + "/"
}

// Login exchanges credentials for a token and keeps it on the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.call(ctx, "login", http.MethodPost, "/auth/login/", body, &out, false); err != nil {
		return "", err
	}
	c.setToken(out.Token)
	return out.Token, nil
}

// Logout invalidates the token on the backend and forgets it locally.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.call(ctx, "logout", http.MethodPost, "/auth/logout/", nil, nil, true); err != nil {
		return err
	}
	c.setToken("")
	return nil
}

// DownloadResume returns the resume file. The endpoint is public.
func (c *Client) DownloadResume(ctx context.Context) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, "/resume/download/", nil, false)
	if err != nil {
		return nil, fmt.Errorf("download resume: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download resume: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download resume: %w", err)
	}
	return data, nil
}

// Stats returns the backend's free-form statistics document.
func (c *Client) Stats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.call(ctx, "fetch stats", http.MethodGet, "/stats/", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}
