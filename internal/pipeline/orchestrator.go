package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reel/internal/catalog"
	"reel/internal/facts"
	"reel/internal/logging"
	"reel/internal/notifications"
	"reel/internal/publish"
	"reel/internal/scripts"
	"reel/internal/services"
	"reel/internal/videos"
)

// RunOptions configures one end-to-end pipeline run.
type RunOptions struct {
	FactCount    int
	Categories   []string
	Format       string
	TargetLength string
	Settings     videos.RenderSettings
	Publish      bool
	Privacy      catalog.Privacy
	Force        bool
}

// RunResult carries every stage's output, including partial-success
// details, so callers can see exactly what happened at each step.
type RunResult struct {
	Facts          []*catalog.Fact
	Scripts        []*catalog.Script
	SkippedFacts   []scripts.Skip
	Videos         []*catalog.Video
	SkippedScripts []videos.Skip
	Outcomes       []publish.Outcome
	Duration       time.Duration
}

// Published counts the successful publish outcomes.
func (r RunResult) Published() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Err == nil {
			count++
		}
	}
	return count
}

// Failed counts failed publish outcomes plus videos that did not render.
func (r RunResult) Failed() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			count++
		}
	}
	for _, video := range r.Videos {
		if video.Status == catalog.VideoStatusFailed {
			count++
		}
	}
	return count
}

// Orchestrator runs the full fact-to-published sequence.
type Orchestrator struct {
	facts    *facts.Service
	scripts  *scripts.Service
	videos   *videos.Service
	publish  *publish.Service
	notifier notifications.Service
	logger   *slog.Logger
}

// NewOrchestrator wires the stage services together.
func NewOrchestrator(factSvc *facts.Service, scriptSvc *scripts.Service, videoSvc *videos.Service, publishSvc *publish.Service, notifier notifications.Service, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Orchestrator{
		facts:    factSvc,
		scripts:  scriptSvc,
		videos:   videoSvc,
		publish:  publishSvc,
		notifier: notifier,
		logger:   logger.With(logging.String(logging.FieldComponent, "pipeline")),
	}
}

// Run executes the pipeline once. Stages run in order and each consumes
// the previous stage's successful output; a stage producing fewer records
// than its input is reflected in the result, not treated as fatal. Only
// infrastructure failures (store errors, cancellation) abort the run.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	started := time.Now()
	result := &RunResult{}

	// Every run carries a correlation id so stage logs can be tied together.
	ctx = services.WithRequestID(ctx, uuid.NewString())

	if o.notifier != nil {
		if err := o.notifier.NotifyPipelineStarted(ctx, opts.FactCount); err != nil {
			o.logger.WarnContext(ctx, "pipeline start notification failed", logging.Error(err))
		}
	}

	factCtx := services.WithStage(ctx, "facts")
	generated, err := o.facts.Generate(factCtx, opts.FactCount, opts.Categories)
	if err != nil {
		return result, o.fail(factCtx, err, "fact generation")
	}
	result.Facts = generated
	logging.WithContext(factCtx, o.logger).InfoContext(factCtx, "pipeline stage complete",
		logging.Int("produced", len(generated)))

	factIDs := make([]int64, len(generated))
	for i, fact := range generated {
		factIDs[i] = fact.ID
	}
	scriptCtx := services.WithStage(ctx, "scripts")
	created, skippedFacts, err := o.scripts.GenerateBatch(scriptCtx, factIDs, scripts.GenerationConfig{
		Format:       opts.Format,
		TargetLength: opts.TargetLength,
	})
	result.Scripts = created
	result.SkippedFacts = skippedFacts
	if err != nil {
		return result, o.fail(scriptCtx, err, "script generation")
	}
	logging.WithContext(scriptCtx, o.logger).InfoContext(scriptCtx, "pipeline stage complete",
		logging.Int("produced", len(created)))

	scriptIDs := make([]int64, len(created))
	for i, script := range created {
		scriptIDs[i] = script.ID
	}
	videoCtx := services.WithStage(ctx, "videos")
	assembled, skippedScripts, err := o.videos.AssembleMany(videoCtx, scriptIDs, opts.Settings)
	result.Videos = assembled
	result.SkippedScripts = skippedScripts
	if err != nil {
		return result, o.fail(videoCtx, err, "video assembly")
	}
	logging.WithContext(videoCtx, o.logger).InfoContext(videoCtx, "pipeline stage complete",
		logging.Int("produced", len(assembled)))

	if opts.Publish {
		var readyIDs []int64
		for _, video := range assembled {
			if video.Status == catalog.VideoStatusReady {
				readyIDs = append(readyIDs, video.ID)
			}
		}
		publishCtx := services.WithStage(ctx, "publish")
		outcomes, err := o.publish.PublishMany(publishCtx, readyIDs, opts.Privacy, opts.Force)
		result.Outcomes = outcomes
		if err != nil {
			return result, o.fail(publishCtx, err, "publishing")
		}
		if o.notifier != nil {
			for _, outcome := range outcomes {
				if outcome.Err == nil {
					if err := o.notifier.NotifyVideoPublished(ctx, outcome.Published.Title, outcome.Published.ExternalURL); err != nil {
						o.logger.WarnContext(ctx, "publish notification failed", logging.Error(err))
					}
				}
			}
		}
	}

	result.Duration = time.Since(started)
	if o.notifier != nil {
		if err := o.notifier.NotifyPipelineCompleted(ctx, result.Published(), result.Failed(), result.Duration); err != nil {
			o.logger.WarnContext(ctx, "pipeline completion notification failed", logging.Error(err))
		}
	}
	o.logger.InfoContext(ctx, "pipeline run complete",
		logging.Int("facts", len(result.Facts)),
		logging.Int("scripts", len(result.Scripts)),
		logging.Int("videos", len(result.Videos)),
		logging.Int("published", result.Published()),
		logging.Duration("elapsed", result.Duration))
	return result, nil
}

func (o *Orchestrator) fail(ctx context.Context, err error, stage string) error {
	if o.notifier != nil {
		if notifyErr := o.notifier.NotifyError(ctx, err, stage); notifyErr != nil {
			o.logger.WarnContext(ctx, "error notification failed", logging.Error(notifyErr))
		}
	}
	return err
}
