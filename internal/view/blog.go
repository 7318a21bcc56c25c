// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"strings"
	"time"
)

// Blog redirect timing.
const (
	BlogRedirectDelay = time.Second
	BlogReturnDelay   = 500 * time.Millisecond
)

// BlogRedirect opens the external blog after a delay and then returns the
// visitor home. A manual link is always shown.
type BlogRedirect struct {
	URL         string
	Delay       time.Duration
	ReturnDelay time.Duration
	ReturnTo    string
}

// NewBlogRedirect targets url with the standard delays.
func NewBlogRedirect(url string) BlogRedirect {
	return BlogRedirect{
		URL:         url,
		Delay:       BlogRedirectDelay,
		ReturnDelay: BlogReturnDelay,
		ReturnTo:    "/",
	}
}

// DelayMillis is the redirect delay for the page script.
func (b BlogRedirect) DelayMillis() int64 { return b.Delay.Milliseconds() }

// ReturnMillis is the return-home delay for the page script.
func (b BlogRedirect) ReturnMillis() int64 { return b.ReturnDelay.Milliseconds() }

// DelaySeconds is the meta refresh fallback delay, rounded up.
func (b BlogRedirect) DelaySeconds() int64 {
	return int64((b.Delay + time.Second - 1) / time.Second)
}

// ResumePreviewURL turns a document share link into its inline preview
// link. Other URLs are returned unchanged.
func ResumePreviewURL(shareURL string) string {
	return strings.Replace(shareURL, "/view?usp=sharing", "/preview", 1)
}
