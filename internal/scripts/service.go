package scripts

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/logging"
	"reel/internal/services"
)

// GenerationConfig carries the caller's per-request script options.
type GenerationConfig struct {
	Format       string
	TargetLength string
}

// Skip reports a fact id that a batch call could not process.
type Skip struct {
	FactID int64
	Err    error
}

// Service generates scripts from stored facts.
type Service struct {
	store     *catalog.Store
	cfg       *config.Config
	templates TemplateProvider
	logger    *slog.Logger
}

// NewService builds a script service. A nil provider selects the builtin
// templates.
func NewService(store *catalog.Store, cfg *config.Config, templates TemplateProvider, logger *slog.Logger) *Service {
	if templates == nil {
		templates = NewBuiltinProvider(nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		store:     store,
		cfg:       cfg,
		templates: templates,
		logger:    logger.With(logging.String(logging.FieldComponent, "scripts")),
	}
}

var formatCaser = cases.Title(language.English)

// ResolveFormat maps free-form input onto a known format, falling back to
// Conversational. Matching is case-insensitive.
func ResolveFormat(value string) string {
	normalized := formatCaser.String(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case FormatConversational, FormatEducational, FormatEntertaining:
		return normalized
	default:
		return FormatConversational
	}
}

// Generate creates a script for one fact.
func (s *Service) Generate(ctx context.Context, factID int64, genCfg GenerationConfig) (*catalog.Script, error) {
	fact, err := s.store.GetFact(ctx, factID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, services.Wrap(services.ErrNotFound, "scripts", "generate", "fact does not exist", err)
		}
		return nil, services.Wrap(services.ErrTransient, "scripts", "generate", "load fact", err)
	}

	format := ResolveFormat(genCfg.Format)
	targetLength := strings.TrimSpace(genCfg.TargetLength)
	if targetLength == "" {
		targetLength = s.cfg.Scripts.DefaultTargetLength
	}

	texts := s.templates.Render(fact.Content, format)
	total := ParseTargetLength(targetLength)
	intro, body, transition, outro := allocateDurations(total)

	script := &catalog.Script{
		FactID:       fact.ID,
		Format:       format,
		TargetLength: targetLength,
		Sections: []catalog.Section{
			{Type: catalog.SectionIntro, Text: texts.Intro, Duration: intro},
			{Type: catalog.SectionBody, Text: texts.Body, Duration: body},
			{Type: catalog.SectionTransition, Text: texts.Transition, Duration: transition},
			{Type: catalog.SectionOutro, Text: texts.Outro, Duration: outro},
		},
		EstimatedDuration: intro + body + transition + outro,
	}
	if err := s.store.CreateScript(ctx, script); err != nil {
		return nil, services.Wrap(services.ErrTransient, "scripts", "generate", "persist script", err)
	}

	s.logger.InfoContext(ctx, "script generated",
		logging.Int64("scriptID", script.ID),
		logging.Int64("factID", fact.ID),
		logging.String("format", format),
		logging.Int("durationSeconds", script.EstimatedDuration))
	return script, nil
}

// GenerateBatch creates scripts for many facts. Fact ids that do not
// resolve are reported as skips rather than failing the batch; the caller
// compares the returned lengths to detect partial success. Persistence
// failures still abort, returning what was created so far.
func (s *Service) GenerateBatch(ctx context.Context, factIDs []int64, genCfg GenerationConfig) ([]*catalog.Script, []Skip, error) {
	var created []*catalog.Script
	var skipped []Skip
	for _, factID := range factIDs {
		if err := ctx.Err(); err != nil {
			return created, skipped, err
		}
		script, err := s.Generate(ctx, factID, genCfg)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				s.logger.WarnContext(ctx, "skipping unknown fact", logging.Int64("factID", factID))
				skipped = append(skipped, Skip{FactID: factID, Err: err})
				continue
			}
			return created, skipped, err
		}
		created = append(created, script)
	}
	return created, skipped, nil
}

// List returns stored scripts in insertion order.
func (s *Service) List(ctx context.Context) ([]*catalog.Script, error) {
	scripts, err := s.store.ListScripts(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "scripts", "list", "list scripts", err)
	}
	return scripts, nil
}

// Get fetches a single script.
func (s *Service) Get(ctx context.Context, id int64) (*catalog.Script, error) {
	script, err := s.store.GetScript(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, services.Wrap(services.ErrNotFound, "scripts", "get", "script does not exist", err)
		}
		return nil, services.Wrap(services.ErrTransient, "scripts", "get", "load script", err)
	}
	return script, nil
}
