// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"folio/internal/middleware"
	"folio/internal/reveal"
)

// Reveal streams a page's staggered reveal as Server-Sent Events. The
// schedule lives as long as the stream: when the visitor leaves, the
// request context ends and every pending step is cancelled.
func Reveal(w http.ResponseWriter, r *http.Request) {
	var steps []reveal.Step
	switch chi.URLParam(r, "page") {
	case "home":
		steps = reveal.Plan(parseRevealIDs(r.URL.Query().Get("ids")), reveal.HomeStep)
	case "products":
		steps = reveal.Plan(parseRevealIDs(r.URL.Query().Get("ids")), reveal.ProductsStep)
	case "about":
		steps = []reveal.Step{{ID: reveal.AboutBarsID, Delay: reveal.AboutBarsDelay}}
	default:
		http.NotFound(w, r)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	rc := http.NewResponseController(w)
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		slog.Warn("reveal stream cannot flush", "error", err)
	}

	err := reveal.Cascade(r.Context(), steps, func(s reveal.Step) error {
		return writeEvent(w, rc, "reveal", s)
	})
	switch {
	case err == nil:
		_ = writeEvent(w, rc, "done", struct{}{})
	case r.Context().Err() != nil:
		slog.Debug("reveal stream closed by client",
			"request_id", middleware.RequestIDFromCtx(r.Context()),
		)
	default:
		slog.Warn("reveal stream failed", "error", err)
	}
}

// writeEvent sends one named event and flushes it. Write deadlines are
// pushed forward so a server WriteTimeout does not cut the stream.
func writeEvent(w http.ResponseWriter, rc *http.ResponseController, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", name, err)
	}
	_ = rc.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	return rc.Flush()
}
