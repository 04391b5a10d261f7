package publish_test

import (
	"context"
	"errors"
	"testing"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/publish"
	"reel/internal/scripts"
	"reel/internal/services"
	"reel/internal/testsupport"
	"reel/internal/videos"
)

type failingPlatform struct{}

func (failingPlatform) Upload(context.Context, string, publish.UploadMetadata) (publish.UploadResult, error) {
	return publish.UploadResult{}, errors.New("platform quota exceeded")
}

func newFixture(t *testing.T, platform publish.Platform) (*publish.Service, *catalog.Store, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	return publish.NewService(store, cfg, platform, nil), store, cfg
}

func mustVideo(t *testing.T, store *catalog.Store, cfg *config.Config) *catalog.Video {
	t.Helper()
	ctx := context.Background()
	fact := testsupport.MustCreateFact(t, store, "Sea otters hold hands while sleeping.", "Nature")
	script, err := scripts.NewService(store, cfg, nil, nil).Generate(ctx, fact.ID, scripts.GenerationConfig{})
	if err != nil {
		t.Fatalf("generate script: %v", err)
	}
	videoSvc, err := videos.NewService(store, cfg, nil, nil)
	if err != nil {
		t.Fatalf("video service: %v", err)
	}
	video, err := videoSvc.Assemble(ctx, script.ID, videos.RenderSettings{})
	if err != nil {
		t.Fatalf("assemble video: %v", err)
	}
	return video
}

func TestPublishAtMostOnce(t *testing.T) {
	svc, store, cfg := newFixture(t, nil)
	video := mustVideo(t, store, cfg)
	ctx := context.Background()

	first, err := svc.Publish(ctx, video.ID, catalog.PrivacyPublic, false)
	if err != nil {
		t.Fatalf("first Publish: %v", err)
	}
	if first.ExternalID == "" || first.ExternalURL == "" {
		t.Fatalf("expected external identifiers, got %+v", first)
	}

	_, err = svc.Publish(ctx, video.ID, catalog.PrivacyPublic, false)
	if !errors.Is(err, services.ErrAlreadyPublished) {
		t.Fatalf("expected already-published error, got %v", err)
	}

	second, err := svc.Publish(ctx, video.ID, catalog.PrivacyUnlisted, true)
	if err != nil {
		t.Fatalf("forced Publish: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("expected a second publish record under force")
	}
	if second.Privacy != catalog.PrivacyUnlisted {
		t.Fatalf("expected Unlisted privacy, got %s", second.Privacy)
	}

	records, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 publish records, got %d", len(records))
	}
}

func TestPublishNotFound(t *testing.T) {
	svc, _, _ := newFixture(t, nil)

	_, err := svc.Publish(context.Background(), 99999, catalog.PrivacyPublic, false)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestPlatformFailureCreatesNoRecord(t *testing.T) {
	svc, store, cfg := newFixture(t, failingPlatform{})
	video := mustVideo(t, store, cfg)
	ctx := context.Background()

	_, err := svc.Publish(ctx, video.ID, catalog.PrivacyPublic, false)
	if !errors.Is(err, services.ErrPublish) {
		t.Fatalf("expected publish error, got %v", err)
	}

	records, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no publish records after failure, got %d", len(records))
	}
}

func TestPublishManyPerItemOutcomes(t *testing.T) {
	svc, store, cfg := newFixture(t, nil)
	video := mustVideo(t, store, cfg)
	ctx := context.Background()

	outcomes, err := svc.PublishMany(ctx, []int64{video.ID, 99999}, catalog.PrivacyPublic, false)
	if err != nil {
		t.Fatalf("PublishMany: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Err != nil || outcomes[0].Published == nil {
		t.Fatalf("expected first video published, got %+v", outcomes[0])
	}
	if !errors.Is(outcomes[1].Err, services.ErrNotFound) {
		t.Fatalf("expected not-found outcome for missing video, got %v", outcomes[1].Err)
	}
}

func TestPublishManyContinuesPastPlatformFailure(t *testing.T) {
	svc, store, cfg := newFixture(t, failingPlatform{})
	first := mustVideo(t, store, cfg)
	second := mustVideo(t, store, cfg)

	outcomes, err := svc.PublishMany(context.Background(), []int64{first.ID, second.ID}, catalog.PrivacyPublic, false)
	if err != nil {
		t.Fatalf("PublishMany: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected both videos attempted, got %d outcomes", len(outcomes))
	}
	for i, outcome := range outcomes {
		if !errors.Is(outcome.Err, services.ErrPublish) {
			t.Fatalf("outcome %d: expected publish error, got %v", i, outcome.Err)
		}
	}
}

func TestResolvePrivacy(t *testing.T) {
	svc, _, _ := newFixture(t, nil)

	privacy, err := svc.ResolvePrivacy("")
	if err != nil {
		t.Fatalf("ResolvePrivacy default: %v", err)
	}
	if privacy != catalog.PrivacyPublic {
		t.Fatalf("expected configured default Public, got %s", privacy)
	}

	privacy, err = svc.ResolvePrivacy("unlisted")
	if err != nil {
		t.Fatalf("ResolvePrivacy lowercase: %v", err)
	}
	if privacy != catalog.PrivacyUnlisted {
		t.Fatalf("expected case-insensitive match, got %s", privacy)
	}

	if _, err := svc.ResolvePrivacy("everyone"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
