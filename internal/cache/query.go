// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cache provides a Valkey-backed read-through cache in front of the
// document store. Query results are stored for a short TTL so repeated page
// views skip the hosted database round trip.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"folio/internal/docstore"
)

const (
	// keyPrefix is the Valkey key prefix for cached query results.
	keyPrefix = "docs:"

	// DefaultTTL is how long a query result stays cached.
	DefaultTTL = time.Minute
)

// Store wraps a docstore.Store. Each collection carries a generation
// counter that is bumped on insert, so cached results for that collection
// stop being addressed and age out on their own.
type Store struct {
	next docstore.Store
	kv   Backend
	ttl  time.Duration
}

// New returns a caching store in front of next.
func New(next docstore.Store, kv Backend, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{next: next, kv: kv, ttl: ttl}
}

// Find serves q from the cache when possible. Cache errors fall through to
// the backing store; backing store errors are never cached.
func (s *Store) Find(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	key, err := s.key(ctx, q)
	if err != nil {
		slog.Warn("query cache key error", "collection", q.Collection, "error", err)
		return s.next.Find(ctx, q)
	}

	if docs, ok := s.lookup(ctx, key); ok {
		slog.Debug("query cache hit", "collection", q.Collection)
		return docs, nil
	}

	docs, err := s.next.Find(ctx, q)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(docs); err != nil {
		slog.Warn("query cache encode error", "collection", q.Collection, "error", err)
	} else if err := s.kv.Set(ctx, key, payload, s.ttl); err != nil {
		slog.Warn("query cache set error", "collection", q.Collection, "error", err)
	}
	return docs, nil
}

func (s *Store) lookup(ctx context.Context, key string) ([]docstore.Document, bool) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			slog.Warn("query cache get error", "error", err)
		}
		return nil, false
	}
	var docs []docstore.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		slog.Warn("query cache decode error", "error", err)
		return nil, false
	}
	return docs, true
}

// Insert writes through and invalidates the collection.
func (s *Store) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	id, err := s.next.Insert(ctx, collection, data)
	if err != nil {
		return "", err
	}
	if _, err := s.kv.Incr(ctx, generationKey(collection)); err != nil {
		slog.Warn("query cache invalidate error", "collection", collection, "error", err)
	}
	return id, nil
}

// Close closes the backing store.
func (s *Store) Close() error { return s.next.Close() }

func (s *Store) key(ctx context.Context, q docstore.Query) (string, error) {
	gen := int64(0)
	raw, err := s.kv.Get(ctx, generationKey(q.Collection))
	switch {
	case err == nil:
		if gen, err = strconv.ParseInt(string(raw), 10, 64); err != nil {
			return "", fmt.Errorf("parse generation: %w", err)
		}
	case !errors.Is(err, ErrMiss):
		return "", err
	}

	encoded, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("encode query: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return fmt.Sprintf("%s%s:%d:%s", keyPrefix, q.Collection, gen, hex.EncodeToString(sum[:8])), nil
}

func generationKey(collection string) string {
	return keyPrefix + "gen:" + collection
}
