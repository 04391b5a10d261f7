package videos

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

// titlePrefix is prepended to every derived video title.
const titlePrefix = "Did You Know: "

// titleContentLimit caps how much fact content flows into a title before
// the ellipsis marker is appended.
const titleContentLimit = 50

// Skip reports a script id that a batch call could not process.
type Skip struct {
	ScriptID int64
	Err      error
}

// Service assembles videos from stored scripts.
type Service struct {
	store    *catalog.Store
	cfg      *config.Config
	renderer Renderer
	logger   *slog.Logger
}

// NewService builds a video service. A nil renderer selects the stub
// renderer writing into the configured output directory.
func NewService(store *catalog.Store, cfg *config.Config, renderer Renderer, logger *slog.Logger) (*Service, error) {
	if renderer == nil {
		outputDir, err := config.ExpandPath(cfg.Paths.OutputDir)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "videos", "init", "expand output directory", err)
		}
		renderer = &StubRenderer{OutputDir: outputDir}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		store:    store,
		cfg:      cfg,
		renderer: renderer,
		logger:   logger.With(logging.String(logging.FieldComponent, "videos")),
	}, nil
}

// DeriveTitle builds a video title from fact content: the fixed prefix plus
// the first 50 characters, with an ellipsis marker when content was cut.
// The limit counts characters, not bytes, so multibyte content is never
// split mid-rune.
func DeriveTitle(factContent string) string {
	runes := []rune(factContent)
	if len(runes) <= titleContentLimit {
		return titlePrefix + factContent
	}
	return titlePrefix + string(runes[:titleContentLimit]) + "..."
}

// Assemble renders one script into a new video record. Renderer failure is
// not an error at this level: the video is recorded with Failed status and
// the renderer's message, and the caller decides whether that is fatal.
func (s *Service) Assemble(ctx context.Context, scriptID int64, settings RenderSettings) (*catalog.Video, error) {
	script, err := s.store.GetScript(ctx, scriptID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, services.Wrap(services.ErrNotFound, "videos", "assemble", "script does not exist", err)
		}
		return nil, services.Wrap(services.ErrTransient, "videos", "assemble", "load script", err)
	}
	fact, err := s.store.GetFact(ctx, script.FactID)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "videos", "assemble", "load fact for script", err)
	}

	s.applyDefaults(&settings)
	title := DeriveTitle(fact.Content)

	renderCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Render.TimeoutSeconds)*time.Second)
	result, renderErr := s.renderer.Render(renderCtx, script, title, settings)
	cancel()

	video := &catalog.Video{
		ScriptID:    script.ID,
		Title:       title,
		Duration:    script.EstimatedDuration,
		Resolution:  settings.Resolution,
		VoiceType:   settings.VoiceType,
		VisualStyle: settings.VisualStyle,
		Status:      catalog.VideoStatusReady,
	}
	switch {
	case renderErr != nil:
		video.Status = catalog.VideoStatusFailed
		video.RenderError = renderErr.Error()
	case !result.OK:
		video.Status = catalog.VideoStatusFailed
		video.RenderError = result.Error
	default:
		video.ArtifactPath = result.ArtifactPath
	}

	if err := s.store.CreateVideo(ctx, video); err != nil {
		return nil, services.Wrap(services.ErrTransient, "videos", "assemble", "persist video", err)
	}

	ctx = services.WithRecordID(ctx, video.ID)
	if video.Status == catalog.VideoStatusFailed {
		logging.WithContext(ctx, s.logger).WarnContext(ctx, "render failed",
			logging.Int64("scriptID", script.ID),
			logging.String("error", video.RenderError))
	} else {
		logging.WithContext(ctx, s.logger).InfoContext(ctx, "video assembled",
			logging.Int64("scriptID", script.ID),
			logging.String("artifact", video.ArtifactPath))
	}
	return video, nil
}

// AssembleMany renders videos for many scripts, skipping unresolvable ids.
func (s *Service) AssembleMany(ctx context.Context, scriptIDs []int64, settings RenderSettings) ([]*catalog.Video, []Skip, error) {
	var created []*catalog.Video
	var skipped []Skip
	for _, scriptID := range scriptIDs {
		if err := ctx.Err(); err != nil {
			return created, skipped, err
		}
		video, err := s.Assemble(ctx, scriptID, settings)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				s.logger.WarnContext(ctx, "skipping unknown script", logging.Int64("scriptID", scriptID))
				skipped = append(skipped, Skip{ScriptID: scriptID, Err: err})
				continue
			}
			return created, skipped, err
		}
		created = append(created, video)
	}
	return created, skipped, nil
}

// List returns stored videos in insertion order, optionally filtered by
// status.
func (s *Service) List(ctx context.Context, status catalog.VideoStatus) ([]*catalog.Video, error) {
	videos, err := s.store.ListVideos(ctx, status)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "videos", "list", "list videos", err)
	}
	return videos, nil
}

// Get fetches a single video.
func (s *Service) Get(ctx context.Context, id int64) (*catalog.Video, error) {
	video, err := s.store.GetVideo(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, services.Wrap(services.ErrNotFound, "videos", "get", "video does not exist", err)
		}
		return nil, services.Wrap(services.ErrTransient, "videos", "get", "load video", err)
	}
	return video, nil
}

// Latest returns the most recent video for a script.
func (s *Service) Latest(ctx context.Context, scriptID int64) (*catalog.Video, error) {
	video, err := s.store.LatestVideoForScript(ctx, scriptID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, services.Wrap(services.ErrNotFound, "videos", "latest", "no video for script", err)
		}
		return nil, services.Wrap(services.ErrTransient, "videos", "latest", "load video", err)
	}
	return video, nil
}

func (s *Service) applyDefaults(settings *RenderSettings) {
	if strings.TrimSpace(settings.Resolution) == "" {
		settings.Resolution = s.cfg.Render.DefaultResolution
	}
	if strings.TrimSpace(settings.VoiceType) == "" {
		settings.VoiceType = s.cfg.Render.DefaultVoice
	}
	if strings.TrimSpace(settings.VisualStyle) == "" {
		settings.VisualStyle = s.cfg.Render.DefaultVisualStyle
	}
}
