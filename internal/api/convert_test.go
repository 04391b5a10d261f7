package api_test

import (
	"errors"
	"testing"
	"time"

	"reel/internal/api"
	"reel/internal/catalog"
	"reel/internal/publish"
	"reel/internal/scripts"
)

func TestFromScriptCarriesSections(t *testing.T) {
	script := &catalog.Script{
		ID:           3,
		FactID:       1,
		Format:       "Educational",
		TargetLength: "60 seconds",
		Sections: []catalog.Section{
			{Type: catalog.SectionIntro, Text: "intro", Duration: 12},
			{Type: catalog.SectionBody, Text: "body", Duration: 36},
		},
		EstimatedDuration: 48,
		CreatedAt:         time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	dto := api.FromScript(script)
	if dto.ID != 3 || dto.FactID != 1 {
		t.Fatalf("id fields mismatch: %+v", dto)
	}
	if len(dto.Sections) != 2 || dto.Sections[0].Type != "intro" {
		t.Fatalf("sections mismatch: %+v", dto.Sections)
	}
	if dto.CreatedAt == "" {
		t.Fatal("expected formatted timestamp")
	}
}

func TestFromVideoOmitsEmptyOptionalFields(t *testing.T) {
	dto := api.FromVideo(&catalog.Video{ID: 1, ScriptID: 2, Status: catalog.VideoStatusFailed, RenderError: "boom"})
	if dto.ArtifactPath != "" {
		t.Fatalf("expected empty artifact path, got %q", dto.ArtifactPath)
	}
	if dto.RenderError != "boom" || dto.Status != "Failed" {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestScriptOutcomes(t *testing.T) {
	created := []*catalog.Script{{ID: 10, FactID: 1}, {ID: 11, FactID: 3}}
	skipped := []scripts.Skip{{FactID: 2, Err: errors.New("fact does not exist")}}

	outcomes := api.ScriptOutcomes(created, skipped)
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if !outcomes[0].OK || outcomes[0].ID != 1 {
		t.Fatalf("unexpected first outcome: %+v", outcomes[0])
	}
	if outcomes[2].OK || outcomes[2].Error == "" {
		t.Fatalf("expected skip outcome with error, got %+v", outcomes[2])
	}
}

func TestPublishOutcomes(t *testing.T) {
	outcomes := api.PublishOutcomes([]publish.Outcome{
		{VideoID: 1, Published: &catalog.Published{ID: 5, VideoID: 1}},
		{VideoID: 2, Err: errors.New("platform upload failed")},
	})
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if !outcomes[0].OK || outcomes[1].OK {
		t.Fatalf("outcome flags wrong: %+v", outcomes)
	}
	if outcomes[1].Error != "platform upload failed" {
		t.Fatalf("expected error text, got %q", outcomes[1].Error)
	}
}

func TestNilConversionsAreSafe(t *testing.T) {
	if got := api.FromFacts(nil); got != nil {
		t.Fatalf("expected nil slice, got %v", got)
	}
	if dto := api.FromFact(nil); dto.ID != 0 {
		t.Fatalf("expected zero dto, got %+v", dto)
	}
}
