package testsupport

import (
	"context"
	"testing"

	"reel/internal/catalog"
	"reel/internal/config"
)

// MustOpenStore opens a catalog store for tests and closes it on cleanup.
func MustOpenStore(t *testing.T, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.NewStore(cfg)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if err := store.Open(context.Background()); err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

// MustCreateFact inserts a fact and returns it.
func MustCreateFact(t *testing.T, store *catalog.Store, content, category string) *catalog.Fact {
	t.Helper()

	fact := &catalog.Fact{Content: content, Category: category}
	if err := store.CreateFact(context.Background(), fact); err != nil {
		t.Fatalf("create fact: %v", err)
	}
	return fact
}
