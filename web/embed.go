// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides embedded static assets (CSS, JS, images) for the
// portfolio pages. In development, templates load Tailwind and HTMX from a
// CDN; in production, the compiled and vendored files are embedded here and
// served at /static/.
package web

import "embed"

//go:generate sh -c "npx tailwindcss -i static/css/input.css -o static/css/site.css --minify"
//go:generate sh -c "curl -sSfL -o static/js/htmx.min.js https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// StaticFS embeds the web/static/ directory tree. Release builds run
// go generate first so it includes the compiled site.css and vendored HTMX.
// In local development it may only contain the input.css source file.
//
//go:embed all:static
var StaticFS embed.FS
