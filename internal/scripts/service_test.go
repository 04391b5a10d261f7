package scripts_test

import (
	"context"
	"errors"
	"testing"

	"reel/internal/catalog"
	"reel/internal/scripts"
	"reel/internal/services"
	"reel/internal/testsupport"
)

func newService(t *testing.T) (*scripts.Service, *catalog.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	return scripts.NewService(store, cfg, nil, nil), store
}

func TestGenerateSectionShape(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	fact := testsupport.MustCreateFact(t, store, "A day on Venus is longer than a year on Venus.", "Space")

	script, err := svc.Generate(ctx, fact.ID, scripts.GenerationConfig{Format: "Educational", TargetLength: "60 seconds"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := []catalog.SectionType{catalog.SectionIntro, catalog.SectionBody, catalog.SectionTransition, catalog.SectionOutro}
	if len(script.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(script.Sections))
	}
	for i, section := range script.Sections {
		if section.Type != want[i] {
			t.Fatalf("section %d: expected %s, got %s", i, want[i], section.Type)
		}
		if section.Text == "" {
			t.Fatalf("section %d: expected non-empty text", i)
		}
	}
	if script.Format != "Educational" {
		t.Fatalf("expected Educational format, got %q", script.Format)
	}
}

func TestDurationInvariant(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	fact := testsupport.MustCreateFact(t, store, "fact", "Science")

	for _, target := range []string{"60 seconds", "90", "45 seconds", "2 minutes", "7 seconds", "not a duration", ""} {
		script, err := svc.Generate(ctx, fact.ID, scripts.GenerationConfig{TargetLength: target})
		if err != nil {
			t.Fatalf("Generate(%q): %v", target, err)
		}
		sum := 0
		for _, section := range script.Sections {
			sum += section.Duration
		}
		if sum != script.EstimatedDuration {
			t.Fatalf("target %q: section sum %d != estimated duration %d", target, sum, script.EstimatedDuration)
		}
	}
}

func TestMalformedTargetFallsBackTo60(t *testing.T) {
	svc, store := newService(t)
	fact := testsupport.MustCreateFact(t, store, "fact", "Science")

	script, err := svc.Generate(context.Background(), fact.ID, scripts.GenerationConfig{TargetLength: "soon"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if script.EstimatedDuration != 60 {
		t.Fatalf("expected 60 second fallback, got %d", script.EstimatedDuration)
	}
}

func TestRemainderGoesToBody(t *testing.T) {
	svc, store := newService(t)
	fact := testsupport.MustCreateFact(t, store, "fact", "Science")

	// 7 seconds: floor allocation gives intro 1, body 3, transition 0,
	// outro 1; the 2 second remainder lands in the body.
	script, err := svc.Generate(context.Background(), fact.ID, scripts.GenerationConfig{TargetLength: "7 seconds"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	durations := make(map[catalog.SectionType]int, 4)
	for _, section := range script.Sections {
		durations[section.Type] = section.Duration
	}
	if durations[catalog.SectionIntro] != 1 || durations[catalog.SectionBody] != 5 ||
		durations[catalog.SectionTransition] != 0 || durations[catalog.SectionOutro] != 1 {
		t.Fatalf("unexpected allocation: %v", durations)
	}
	if script.EstimatedDuration != 7 {
		t.Fatalf("expected exact total 7, got %d", script.EstimatedDuration)
	}
}

func TestUnknownFormatFallsBackToConversational(t *testing.T) {
	svc, store := newService(t)
	fact := testsupport.MustCreateFact(t, store, "fact", "Science")

	script, err := svc.Generate(context.Background(), fact.ID, scripts.GenerationConfig{Format: "Dramatic"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if script.Format != scripts.FormatConversational {
		t.Fatalf("expected Conversational fallback, got %q", script.Format)
	}
}

func TestResolveFormatCaseInsensitive(t *testing.T) {
	if got := scripts.ResolveFormat("educational"); got != scripts.FormatEducational {
		t.Fatalf("expected Educational, got %q", got)
	}
	if got := scripts.ResolveFormat("  ENTERTAINING "); got != scripts.FormatEntertaining {
		t.Fatalf("expected Entertaining, got %q", got)
	}
}

func TestGenerateNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Generate(context.Background(), 99999, scripts.GenerationConfig{})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGenerateBatchPartialSuccess(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	first := testsupport.MustCreateFact(t, store, "a", "Science")
	second := testsupport.MustCreateFact(t, store, "b", "Science")

	created, skipped, err := svc.GenerateBatch(ctx, []int64{first.ID, 99999, second.ID}, scripts.GenerationConfig{})
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 scripts, got %d", len(created))
	}
	if len(skipped) != 1 || skipped[0].FactID != 99999 {
		t.Fatalf("expected id 99999 skipped, got %+v", skipped)
	}
	if !errors.Is(skipped[0].Err, services.ErrNotFound) {
		t.Fatalf("expected not-found skip reason, got %v", skipped[0].Err)
	}
}

func TestParseTargetLength(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"60 seconds", 60},
		{"90", 90},
		{"45s", 45},
		{"2 minutes", 120},
		{"2m", 120},
		{"0 seconds", 60},
		{"-5", 60},
		{"soon", 60},
		{"", 60},
	}
	for _, tc := range cases {
		if got := scripts.ParseTargetLength(tc.input); got != tc.want {
			t.Errorf("ParseTargetLength(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
