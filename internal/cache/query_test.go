package cache

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"folio/internal/docstore"
)

// mapBackend is an in-process Backend without expiry.
type mapBackend struct {
	mu      sync.Mutex
	entries map[string][]byte
	failGet bool
}

func newMapBackend() *mapBackend {
	return &mapBackend{entries: make(map[string][]byte)}
}

func (b *mapBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failGet {
		return nil, errors.New("connection refused")
	}
	v, ok := b.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (b *mapBackend) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = value
	return nil
}

func (b *mapBackend) Incr(_ context.Context, key string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, _ := strconv.ParseInt(string(b.entries[key]), 10, 64)
	n++
	b.entries[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

// countingStore counts Find calls reaching the backing store.
type countingStore struct {
	docstore.Store
	finds int
	err   error
}

func (c *countingStore) Find(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	c.finds++
	if c.err != nil {
		return nil, c.err
	}
	return c.Store.Find(ctx, q)
}

func seeded(t *testing.T) *countingStore {
	t.Helper()
	mem := docstore.NewMemoryStore()
	for _, title := range []string{"Spotmentor", "Deploy Bot"} {
		if _, err := mem.Insert(context.Background(), docstore.CollectionProducts, map[string]any{"title": title, "featured": true}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return &countingStore{Store: mem}
}

func TestFindCachesResults(t *testing.T) {
	backing := seeded(t)
	s := New(backing, newMapBackend(), 0)
	ctx := context.Background()
	q := docstore.Collection(docstore.CollectionProducts).OrderedBy("title", docstore.Asc)

	first, err := s.Find(ctx, q)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	second, err := s.Find(ctx, q)
	if err != nil {
		t.Fatalf("Find (cached): %v", err)
	}

	if backing.finds != 1 {
		t.Errorf("backing finds: got %d, want 1", backing.finds)
	}
	if len(second) != 2 || second[0].Data["title"] != first[0].Data["title"] || second[0].ID != first[0].ID {
		t.Errorf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestFindKeysByQuery(t *testing.T) {
	backing := seeded(t)
	s := New(backing, newMapBackend(), 0)
	ctx := context.Background()

	s.Find(ctx, docstore.Collection(docstore.CollectionProducts))
	s.Find(ctx, docstore.Collection(docstore.CollectionProducts).Limited(1))

	if backing.finds != 2 {
		t.Errorf("different queries should not share an entry: got %d finds", backing.finds)
	}
}

func TestInsertInvalidatesCollection(t *testing.T) {
	backing := seeded(t)
	s := New(backing, newMapBackend(), 0)
	ctx := context.Background()
	q := docstore.Collection(docstore.CollectionProducts)

	s.Find(ctx, q)
	if _, err := s.Insert(ctx, docstore.CollectionProducts, map[string]any{"title": "Infra Blueprints"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	docs, err := s.Find(ctx, q)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 3 {
		t.Errorf("after insert: got %d docs, want 3", len(docs))
	}
	if backing.finds != 2 {
		t.Errorf("backing finds: got %d, want 2", backing.finds)
	}
}

func TestFindErrorsAreNotCached(t *testing.T) {
	backing := seeded(t)
	backing.err = errors.New("unavailable")
	s := New(backing, newMapBackend(), 0)
	ctx := context.Background()
	q := docstore.Collection(docstore.CollectionProducts)

	if _, err := s.Find(ctx, q); err == nil {
		t.Fatal("expected the backing error")
	}
	backing.err = nil
	docs, err := s.Find(ctx, q)
	if err != nil || len(docs) != 2 {
		t.Errorf("recovered Find: got %d docs, err %v", len(docs), err)
	}
}

func TestFindFallsThroughOnCacheError(t *testing.T) {
	backing := seeded(t)
	kv := newMapBackend()
	kv.failGet = true
	s := New(backing, kv, 0)

	docs, err := s.Find(context.Background(), docstore.Collection(docstore.CollectionProducts))
	if err != nil || len(docs) != 2 {
		t.Errorf("got %d docs, err %v", len(docs), err)
	}
}

func TestFindInvalidQuery(t *testing.T) {
	backing := seeded(t)
	s := New(backing, newMapBackend(), 0)

	_, err := s.Find(context.Background(), docstore.Query{})
	if !errors.Is(err, docstore.ErrInvalidQuery) {
		t.Errorf("got %v, want ErrInvalidQuery", err)
	}
	if backing.finds != 0 {
		t.Error("invalid queries must not reach the backing store")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkeyClient returns a client on DB 15. Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, keyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return client
}

func TestValkeyBackend(t *testing.T) {
	client := testValkeyClient(t)
	backing := seeded(t)
	s := New(backing, NewValkeyBackend(client), time.Minute)
	ctx := context.Background()
	q := docstore.Collection(docstore.CollectionProducts).WhereEq("featured", true)

	for i := 0; i < 2; i++ {
		docs, err := s.Find(ctx, q)
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(docs) != 2 {
			t.Fatalf("got %d docs, want 2", len(docs))
		}
	}
	if backing.finds != 1 {
		t.Errorf("backing finds: got %d, want 1", backing.finds)
	}

	if _, err := NewValkeyBackend(client).Get(ctx, keyPrefix+"absent"); !errors.Is(err, ErrMiss) {
		t.Errorf("absent key: got %v, want ErrMiss", err)
	}
}
