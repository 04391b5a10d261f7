package facts_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"reel/internal/facts"
	"reel/internal/services"
	"reel/internal/testsupport"
)

func newService(t *testing.T) *facts.Service {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	return facts.NewService(store, cfg, nil, rand.New(rand.NewSource(1)))
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), "   ", "Science")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateDefaultsCategory(t *testing.T) {
	svc := newService(t)

	fact, err := svc.Create(context.Background(), "Sharks predate trees.", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fact.Category != "General" {
		t.Fatalf("expected General category, got %q", fact.Category)
	}
	if fact.ID == 0 {
		t.Fatal("expected assigned id")
	}
}

func TestGenerateRejectsNonPositiveCount(t *testing.T) {
	svc := newService(t)

	_, err := svc.Generate(context.Background(), 0, []string{"Science"})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateClampsToCeiling(t *testing.T) {
	svc := newService(t)

	generated, err := svc.Generate(context.Background(), 500, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(generated) > 20 {
		t.Fatalf("expected at most 20 facts, got %d", len(generated))
	}
}

func TestGenerateNoRepeatWithinCall(t *testing.T) {
	svc := newService(t)

	generated, err := svc.Generate(context.Background(), 5, []string{"Nature"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	seen := make(map[string]bool, len(generated))
	for _, fact := range generated {
		if seen[fact.Content] {
			t.Fatalf("fact emitted twice in one call: %q", fact.Content)
		}
		seen[fact.Content] = true
		if fact.Category != "Nature" {
			t.Fatalf("expected Nature facts only, got %q", fact.Category)
		}
	}
}

func TestGenerateReturnsFewerWhenPoolExhausted(t *testing.T) {
	svc := newService(t)

	generated, err := svc.Generate(context.Background(), 15, []string{"Nature"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(generated) == 0 || len(generated) >= 15 {
		t.Fatalf("expected pool-bounded result below 15, got %d", len(generated))
	}
}

func TestGenerateSkipsUnknownCategories(t *testing.T) {
	svc := newService(t)

	generated, err := svc.Generate(context.Background(), 3, []string{"Astrology", "Science"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, fact := range generated {
		if fact.Category != "Science" {
			t.Fatalf("expected only Science facts, got %q", fact.Category)
		}
	}
	if len(generated) != 3 {
		t.Fatalf("expected 3 facts from the known category, got %d", len(generated))
	}
}

func TestGenerateAllCategoriesUnknown(t *testing.T) {
	svc := newService(t)

	generated, err := svc.Generate(context.Background(), 3, []string{"Astrology"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(generated) != 0 {
		t.Fatalf("expected no facts for unknown category, got %d", len(generated))
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Facts.SeedSamples = true
	store := testsupport.MustOpenStore(t, cfg)
	svc := facts.NewService(store, cfg, nil, rand.New(rand.NewSource(1)))
	ctx := context.Background()

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	first, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(first) != len(facts.Categories()) {
		t.Fatalf("expected one seed fact per category, got %d", len(first))
	}

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	second, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected seeding to be a no-op on populated store, got %d facts", len(second))
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.Get(context.Background(), 42)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
