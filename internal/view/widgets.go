// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"context"

	"folio/internal/models"
)

// DefaultLogo is the bundled branding image.
const DefaultLogo = "/static/img/headshot.svg"

// NavItem is one navigation link.
type NavItem struct {
	Name   string
	Href   string
	Active bool
}

// navRoutes is the fixed route list.
var navRoutes = []NavItem{
	{Name: "Home", Href: "/"},
	{Name: "About", Href: "/about"},
	{Name: "My Products", Href: "/products"},
	{Name: "My Blog", Href: "/blog"},
}

// Nav is the top navigation bar.
type Nav struct {
	Owner   string
	LogoURL string
	Items   []NavItem
}

// NewNav builds the navigation for the current path. The logo comes from
// details when set, otherwise the bundled default.
func NewNav(owner string, details *models.PersonalDetails, path string) Nav {
	n := Nav{Owner: owner, LogoURL: DefaultLogo}
	if details != nil && details.LogoPictureURL != nil && *details.LogoPictureURL != "" {
		n.LogoURL = *details.LogoPictureURL
	}
	n.Items = make([]NavItem, len(navRoutes))
	for i, item := range navRoutes {
		item.Active = item.Href == path
		n.Items[i] = item
	}
	return n
}

// SocialLink is one social profile button.
type SocialLink struct {
	Kind  string
	Label string
	URL   string
	Class string
}

// FloatingContact is the contact panel content.
type FloatingContact struct {
	Email    string
	Location string
	Socials  []SocialLink
	Open     bool
}

// MailTo is the email link target.
func (f FloatingContact) MailTo() string { return "mailto:" + f.Email }

// NewFloatingContact returns nil when details are absent, so nothing is
// rendered. Social links appear only for fields that are set.
func NewFloatingContact(details *models.PersonalDetails, open bool) *FloatingContact {
	if details == nil {
		return nil
	}
	f := &FloatingContact{Email: details.Email, Location: details.Location, Open: open}

	socials := []struct {
		kind, label, class string
		url                *string
	}{
		{"github", "GitHub", "bg-gray-900 hover:bg-gray-800", details.GitHub},
		{"linkedin", "LinkedIn", "bg-blue-600 hover:bg-blue-700", details.LinkedIn},
		{"facebook", "Facebook", "bg-blue-700 hover:bg-blue-800", details.Facebook},
		{"instagram", "Instagram", "bg-gradient-to-r from-purple-500 to-pink-500", details.Instagram},
		{"stackoverflow", "Stack Overflow", "bg-orange-500 hover:bg-orange-600", details.StackOverflow},
		{"twitter", "Twitter", "bg-blue-400 hover:bg-blue-500", details.Twitter},
	}
	for _, s := range socials {
		if s.url == nil || *s.url == "" {
			continue
		}
		f.Socials = append(f.Socials, SocialLink{Kind: s.kind, Label: s.label, URL: *s.url, Class: s.class})
	}
	return f
}

// Chrome is the shared layout around every page.
type Chrome struct {
	Nav     Nav
	Contact *FloatingContact
}

// LoadChrome fetches personal details for the navigation and the contact
// panel. It is independent of the page's own content.
func LoadChrome(ctx context.Context, src Source, owner, path string, contactOpen bool) Chrome {
	details := src.PersonalDetails(ctx)
	return Chrome{
		Nav:     NewNav(owner, details, path),
		Contact: NewFloatingContact(details, contactOpen),
	}
}
