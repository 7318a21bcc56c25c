// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/database"
	"folio/internal/handlers"
	"folio/internal/middleware"
	"folio/internal/render"
	"folio/internal/router"
	"folio/internal/store"
	"folio/web"
)

// Login submits allowed per client IP per window.
const (
	loginAttempts = 10
	loginWindow   = time.Minute
)

func newServeCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio site (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg())
		},
	}
}

// runServe starts the HTTP server and blocks until ctx is cancelled, then
// drains open connections.
func runServe(ctx context.Context, cfg *config.Config) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"docstore", cfg.DocstoreDriver,
		"sessions", cfg.SessionDriver,
	)

	docs, err := openDocstore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open document store: %w", err)
	}
	defer docs.Close()

	// Development content, a no-op once personal details exist.
	if cfg.IsDev() && cfg.DocstoreDriver != config.DriverMemory {
		if err := database.Seed(ctx, docs); err != nil {
			return err
		}
	}

	valkeyClient, err := openValkey(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	if valkeyClient != nil {
		defer valkeyClient.Close()
	}
	sessions := newSessions(valkeyClient, cfg)
	docs = withQueryCache(docs, valkeyClient, cfg)

	renderer, err := render.New(cfg.IsDev(), cfg.AssetPrefix())
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}

	content := store.NewContentStore(docs)
	contacts := contact.NewStore(sessions)

	site := handlers.NewSite(renderer, content, contacts, handlers.SiteOptions{
		Owner:     cfg.SiteOwner,
		BlogURL:   cfg.BlogURL,
		ResumeURL: cfg.ResumeURL,
	})
	auth := handlers.NewAuth(renderer, content, contacts, sessions, cfg.SiteOwner)
	contactHandlers := handlers.NewContact(renderer, content, contacts)

	loginLimiter := middleware.NewRateLimiter(loginAttempts, loginWindow)
	defer loginLimiter.Stop()

	r := router.New(sessions, site, auth, contactHandlers, router.Options{
		SecureCookies: !cfg.IsDev(),
		LoginLimiter:  loginLimiter,
		Static:        static,
	})

	// Reveal streams outlive WriteTimeout by extending their own deadline.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
