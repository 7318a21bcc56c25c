// store_test.go provides shared document-store fakes for the content
// accessor tests.
package store

import (
	"context"
	"errors"
	"testing"

	"folio/internal/docstore"
)

// failingStore simulates a document store whose every query throws.
type failingStore struct {
	calls []docstore.Query
}

func (f *failingStore) Find(_ context.Context, q docstore.Query) ([]docstore.Document, error) {
	f.calls = append(f.calls, q)
	return nil, errors.New("network unreachable")
}

func (f *failingStore) Insert(context.Context, string, map[string]any) (string, error) {
	return "", errors.New("read-only")
}

func (f *failingStore) Close() error { return nil }

// recordingStore wraps a MemoryStore and records the queries it receives.
type recordingStore struct {
	*docstore.MemoryStore
	calls []docstore.Query
}

func (r *recordingStore) Find(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	r.calls = append(r.calls, q)
	return r.MemoryStore.Find(ctx, q)
}

// seededStore returns a recording store holding the given documents.
func seededStore(t *testing.T, docs map[string][]map[string]any) *recordingStore {
	t.Helper()
	mem := docstore.NewMemoryStore()
	for collection, list := range docs {
		for _, d := range list {
			if _, err := mem.Insert(context.Background(), collection, d); err != nil {
				t.Fatalf("seed %s: %v", collection, err)
			}
		}
	}
	return &recordingStore{MemoryStore: mem}
}
