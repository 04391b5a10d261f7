package publish

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/logging"
	"reel/internal/services"
)

// Outcome reports the per-item result of a batch publish.
type Outcome struct {
	VideoID   int64
	Published *catalog.Published
	Err       error
}

// Service publishes videos through the platform collaborator.
type Service struct {
	store    *catalog.Store
	cfg      *config.Config
	platform Platform
	logger   *slog.Logger
}

// NewService builds a publish service. A nil platform selects the stub.
func NewService(store *catalog.Store, cfg *config.Config, platform Platform, logger *slog.Logger) *Service {
	if platform == nil {
		platform = &StubPlatform{WatchBaseURL: cfg.Platform.WatchBaseURL}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		store:    store,
		cfg:      cfg,
		platform: platform,
		logger:   logger.With(logging.String(logging.FieldComponent, "publish")),
	}
}

// Publish uploads one video and records the publication. Without force, a
// video that already has a publish record is rejected; force creates an
// additional record, which is the escape hatch for re-publishing under a
// new privacy setting. Platform failure creates no record at all.
func (s *Service) Publish(ctx context.Context, videoID int64, privacy catalog.Privacy, force bool) (*catalog.Published, error) {
	video, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, services.Wrap(services.ErrNotFound, "publish", "publish", "video does not exist", err)
		}
		return nil, services.Wrap(services.ErrTransient, "publish", "publish", "load video", err)
	}

	if !force {
		if existing, err := s.store.PublishedForVideo(ctx, videoID); err == nil {
			return nil, services.Wrap(services.ErrAlreadyPublished, "publish", "publish",
				"video already published as "+existing.ExternalID, nil)
		} else if !errors.Is(err, catalog.ErrNotFound) {
			return nil, services.Wrap(services.ErrTransient, "publish", "publish", "check publish history", err)
		}
	}

	if privacy == "" {
		privacy, _ = catalog.ParsePrivacy(s.cfg.Platform.DefaultPrivacy)
	}

	metadata := UploadMetadata{
		Title:       video.Title,
		Description: video.Title,
		Tags:        []string{"facts", "shorts"},
		Privacy:     privacy,
	}

	uploadCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Platform.TimeoutSeconds)*time.Second)
	result, err := s.platform.Upload(uploadCtx, video.ArtifactPath, metadata)
	cancel()
	if err != nil {
		return nil, services.Wrap(services.ErrPublish, "publish", "publish", "platform upload failed", err)
	}

	pub := &catalog.Published{
		VideoID:     video.ID,
		Title:       video.Title,
		Privacy:     privacy,
		ExternalID:  result.ExternalID,
		ExternalURL: result.ExternalURL,
	}
	if err := s.store.CreatePublished(ctx, pub); err != nil {
		return nil, services.Wrap(services.ErrTransient, "publish", "publish", "persist publish record", err)
	}

	s.logger.InfoContext(ctx, "video published",
		logging.Int64("videoID", video.ID),
		logging.String("externalID", pub.ExternalID),
		logging.String("privacy", string(pub.Privacy)))
	return pub, nil
}

// PublishMany attempts each video independently and reports per-item
// outcomes. A platform failure on one video does not abort the rest.
func (s *Service) PublishMany(ctx context.Context, videoIDs []int64, privacy catalog.Privacy, force bool) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(videoIDs))
	for _, videoID := range videoIDs {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		pub, err := s.Publish(ctx, videoID, privacy, force)
		outcomes = append(outcomes, Outcome{VideoID: videoID, Published: pub, Err: err})
	}
	return outcomes, nil
}

// List returns publish records in insertion order.
func (s *Service) List(ctx context.Context) ([]*catalog.Published, error) {
	pubs, err := s.store.ListPublished(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "publish", "list", "list publish records", err)
	}
	return pubs, nil
}

// ResolvePrivacy validates caller input against the known privacy settings,
// defaulting to the configured value when empty.
func (s *Service) ResolvePrivacy(value string) (catalog.Privacy, error) {
	if strings.TrimSpace(value) == "" {
		value = s.cfg.Platform.DefaultPrivacy
	}
	privacy, ok := catalog.ParsePrivacy(value)
	if !ok {
		return "", services.Wrap(services.ErrValidation, "publish", "resolve_privacy",
			"privacy must be Public, Unlisted, or Private", nil)
	}
	return privacy, nil
}
