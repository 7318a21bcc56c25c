// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process backend used for local previews
// (DOCSTORE_DRIVER=memory) and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

// Find evaluates the query over a snapshot of the collection.
func (s *MemoryStore) Find(ctx context.Context, q Query) ([]Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	src := s.collections[q.Collection]
	s.mu.RUnlock()

	var docs []Document
	for _, d := range src {
		if matches(d, q.Where) {
			docs = append(docs, copyDocument(d))
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			a, b := docs[i].Data[q.OrderBy], docs[j].Data[q.OrderBy]
			if a == nil || b == nil {
				// Missing values go last in either direction.
				return a != nil && b == nil
			}
			c := compareValues(a, b)
			if q.Direction == Desc {
				return c > 0
			}
			return c < 0
		})
	}

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

// Insert appends a document with a fresh UUID.
func (s *MemoryStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	if collection == "" {
		return "", fmt.Errorf("%w: empty collection", ErrInvalidQuery)
	}
	id := uuid.NewString()

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], copyDocument(Document{ID: id, Data: data}))
	s.mu.Unlock()
	return id, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

func matches(d Document, filters []Filter) bool {
	for _, f := range filters {
		if !reflect.DeepEqual(d.Data[f.Field], f.Value) {
			return false
		}
	}
	return true
}

// compareValues orders numbers numerically and strings lexically. Mixed
// kinds compare as equal.
func compareValues(a, b any) int {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}

	sa, aok := a.(string)
	sb, bok := b.(string)
	if aok && bok {
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

func copyDocument(d Document) Document {
	data := make(map[string]any, len(d.Data))
	for k, v := range d.Data {
		data[k] = v
	}
	return Document{ID: d.ID, Data: data}
}
