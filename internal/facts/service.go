package facts

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/logging"
	"reel/internal/services"
)

// Service creates and generates facts against the catalog store.
type Service struct {
	store  *catalog.Store
	cfg    *config.Config
	logger *slog.Logger
	rng    *rand.Rand
}

// NewService builds a fact service. A nil rng selects the package-level
// random source; tests inject a seeded one for determinism.
func NewService(store *catalog.Store, cfg *config.Config, logger *slog.Logger, rng *rand.Rand) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: logger.With(logging.String(logging.FieldComponent, "facts")),
		rng:    rng,
	}
}

// Create appends a manually supplied fact after validating its content.
func (s *Service) Create(ctx context.Context, content, category string) (*catalog.Fact, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, services.Wrap(services.ErrValidation, "facts", "create", "fact content must not be empty", nil)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "General"
	}

	fact := &catalog.Fact{Content: content, Category: category}
	if err := s.store.CreateFact(ctx, fact); err != nil {
		return nil, services.Wrap(services.ErrTransient, "facts", "create", "persist fact", err)
	}
	s.logger.InfoContext(ctx, "fact created",
		logging.Int64("factID", fact.ID), logging.String("category", fact.Category))
	return fact, nil
}

// Generate draws up to count facts from the curated pools of the given
// categories. The request count is clamped to the configured per-request
// ceiling. Each draw samples a category uniformly with replacement; a fact
// already emitted in this call is not emitted again, and categories whose
// pools are exhausted (or unknown) are dropped from further sampling, so the
// result may be shorter than requested.
func (s *Service) Generate(ctx context.Context, count int, categories []string) ([]*catalog.Fact, error) {
	if count < 1 {
		return nil, services.Wrap(services.ErrValidation, "facts", "generate", "count must be at least 1", nil)
	}
	if max := s.cfg.Facts.MaxPerRequest; count > max {
		s.logger.DebugContext(ctx, "clamping fact count",
			logging.Int("requested", count), logging.Int("ceiling", max))
		count = max
	}
	if len(categories) == 0 {
		categories = s.cfg.Facts.DefaultCategories
	}

	// Work on copies of the pools so draws can be removed without
	// touching the shared curated data.
	remaining := make(map[string][]string, len(categories))
	var eligible []string
	for _, category := range categories {
		category = strings.TrimSpace(category)
		pool, ok := curatedPools[category]
		if !ok {
			s.logger.WarnContext(ctx, "skipping unknown category", logging.String("category", category))
			continue
		}
		if _, seen := remaining[category]; seen {
			continue
		}
		remaining[category] = append([]string{}, pool...)
		eligible = append(eligible, category)
	}

	var generated []*catalog.Fact
	for len(generated) < count && len(eligible) > 0 {
		idx := s.intn(len(eligible))
		category := eligible[idx]
		pool := remaining[category]
		if len(pool) == 0 {
			eligible = append(eligible[:idx], eligible[idx+1:]...)
			continue
		}

		pick := s.intn(len(pool))
		content := pool[pick]
		remaining[category] = append(pool[:pick], pool[pick+1:]...)

		fact := &catalog.Fact{Content: content, Category: category}
		if err := s.store.CreateFact(ctx, fact); err != nil {
			return generated, services.Wrap(services.ErrTransient, "facts", "generate", "persist fact", err)
		}
		generated = append(generated, fact)
	}

	s.logger.InfoContext(ctx, "facts generated",
		logging.Int("requested", count), logging.Int("produced", len(generated)))
	return generated, nil
}

// List returns stored facts in insertion order, optionally filtered by
// category.
func (s *Service) List(ctx context.Context, category string) ([]*catalog.Fact, error) {
	facts, err := s.store.ListFacts(ctx, strings.TrimSpace(category), 0)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "facts", "list", "list facts", err)
	}
	return facts, nil
}

// Get fetches a single fact.
func (s *Service) Get(ctx context.Context, id int64) (*catalog.Fact, error) {
	fact, err := s.store.GetFact(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, services.Wrap(services.ErrNotFound, "facts", "get", "fact does not exist", err)
		}
		return nil, services.Wrap(services.ErrTransient, "facts", "get", "load fact", err)
	}
	return fact, nil
}

// Seed populates an empty store with one sample fact per curated category.
// It is a no-op when the store already holds facts or seeding is disabled.
func (s *Service) Seed(ctx context.Context) error {
	if !s.cfg.Facts.SeedSamples {
		return nil
	}
	existing, err := s.store.ListFacts(ctx, "", 1)
	if err != nil {
		return services.Wrap(services.ErrTransient, "facts", "seed", "inspect store", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, category := range Categories() {
		fact := &catalog.Fact{Content: curatedPools[category][0], Category: category}
		if err := s.store.CreateFact(ctx, fact); err != nil {
			return services.Wrap(services.ErrTransient, "facts", "seed", "persist sample fact", err)
		}
	}
	s.logger.InfoContext(ctx, "seeded sample facts", logging.Int("count", len(curatedPools)))
	return nil
}

func (s *Service) intn(n int) int {
	if s.rng != nil {
		return s.rng.Intn(n)
	}
	return rand.Intn(n)
}

func isNotFound(err error) bool {
	return errors.Is(err, catalog.ErrNotFound)
}
