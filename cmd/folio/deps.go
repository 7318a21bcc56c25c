// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"folio/internal/cache"
	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/docstore"
	"folio/internal/session"
	"folio/internal/valkey"
)

// openDocstore connects the configured document store backend. Postgres
// is migrated on connect. The in-memory backend starts seeded, since it
// has nothing else to serve.
func openDocstore(ctx context.Context, cfg *config.Config) (docstore.Store, error) {
	switch cfg.DocstoreDriver {
	case config.DriverPostgres:
		db, err := database.Connect(ctx, cfg.DSN())
		if err != nil {
			return nil, err
		}
		if _, err := database.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return docstore.NewPostgresStore(db), nil

	case config.DriverMongo:
		return docstore.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)

	case config.DriverMemory:
		docs := docstore.NewMemoryStore()
		if err := database.Seed(ctx, docs); err != nil {
			return nil, err
		}
		slog.Warn("using in-memory document store, content is not persisted")
		return docs, nil
	}
	return nil, fmt.Errorf("unknown document store driver %q", cfg.DocstoreDriver)
}

// openValkey connects to Valkey unless the memory session driver is
// selected, in which case it returns nil.
func openValkey(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.SessionDriver == config.SessionMemory {
		return nil, nil
	}
	return valkey.Connect(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
}

// newSessions builds the session store on client, or in memory when
// client is nil.
func newSessions(client *redis.Client, cfg *config.Config) *session.Store {
	secure := !cfg.IsDev()
	if client == nil {
		slog.Warn("using in-memory sessions, they do not survive a restart")
		return session.NewStore(session.NewMemoryBackend(), secure)
	}
	return session.NewStore(session.NewValkeyBackend(client), secure)
}

// withQueryCache puts the Valkey query cache in front of docs when it is
// enabled and a Valkey connection exists.
func withQueryCache(docs docstore.Store, client *redis.Client, cfg *config.Config) docstore.Store {
	if client == nil || cfg.ContentCacheTTL == 0 {
		return docs
	}
	slog.Info("content query cache enabled", "ttl", cfg.ContentCacheTTL)
	return cache.New(docs, cache.NewValkeyBackend(client), cfg.ContentCacheTTL)
}
