package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitforge/fitforge/internal/sqlite"
)

// Config carries the AI provider credentials. Empty or placeholder values
// disable the corresponding generator, leaving the built-in templates as the
// floor of the cascade.
type Config struct {
	OpenAIAPIKey string
	GeminiAPIKey string
}

// Service generates and persists fitness plans.
type Service struct {
	repo    *sqliteRepository
	cascade cascade
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires the generation cascade in priority order. The template
// generator always terminates the chain so generation as a whole cannot fail.
func NewService(db *sqlite.Database, logger *slog.Logger, cfg Config) *Service {
	var generators []Generator
	if credentialConfigured(cfg.OpenAIAPIKey) {
		generators = append(generators, newOpenAIGenerator(cfg.OpenAIAPIKey, logger))
	}
	if credentialConfigured(cfg.GeminiAPIKey) {
		generators = append(generators, newGeminiGenerator(cfg.GeminiAPIKey, logger))
	}
	generators = append(generators, templateGenerator{})

	return &Service{
		repo:    newSQLiteRepository(db, logger),
		cascade: cascade{generators: generators, logger: logger},
		logger:  logger,
		now:     time.Now,
	}
}

// Generate builds a plan for the given details, stores it and marks it
// current. Only invalid input or a storage write failure can produce an
// error; generator failures fall through the cascade.
func (s *Service) Generate(ctx context.Context, details UserDetails) (FitnessPlan, error) {
	if err := details.Validate(); err != nil {
		return FitnessPlan{}, fmt.Errorf("validate user details: %w", err)
	}

	content := s.cascade.Generate(ctx, details)
	createdAt := s.now().UTC()
	fitnessPlan := FitnessPlan{
		ID:          newPlanID(createdAt),
		CreatedAt:   createdAt,
		UserDetails: details,
		WorkoutPlan: content.WorkoutPlan,
		DietPlan:    content.DietPlan,
		Tips:        content.Tips,
		Motivation:  content.Motivation,
	}

	if err := s.repo.savePlan(ctx, fitnessPlan); err != nil {
		return FitnessPlan{}, fmt.Errorf("save plan: %w", err)
	}
	return fitnessPlan, nil
}

// List returns all stored plans, newest first. Storage failures degrade to an
// empty list so a broken database never takes down the listing.
func (s *Service) List(ctx context.Context) []FitnessPlan {
	plans, err := s.repo.listPlans(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list plans", "error", err)
		return []FitnessPlan{}
	}
	return plans
}

// Get fetches a single plan by ID, reporting ErrNotFound for unknown IDs.
func (s *Service) Get(ctx context.Context, id string) (FitnessPlan, error) {
	fitnessPlan, err := s.repo.getPlan(ctx, id)
	if err != nil {
		return FitnessPlan{}, fmt.Errorf("get plan %s: %w", id, err)
	}
	return fitnessPlan, nil
}

// Current returns the most recently saved plan, or false when no plan has
// been saved yet. Read failures degrade to no current plan.
func (s *Service) Current(ctx context.Context) (FitnessPlan, bool) {
	fitnessPlan, err := s.repo.currentPlan(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.ErrorContext(ctx, "resolve current plan", "error", err)
		}
		return FitnessPlan{}, false
	}
	return fitnessPlan, true
}

// Delete removes a plan. If it was the current plan the current pointer is
// cleared. Deleting an unknown ID is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.deletePlan(ctx, id); err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	return nil
}

// SetStarred flags or unflags a plan as a favourite.
func (s *Service) SetStarred(ctx context.Context, id string, starred bool) error {
	if err := s.repo.setStarred(ctx, id, starred); err != nil {
		return fmt.Errorf("star plan %s: %w", id, err)
	}
	return nil
}

// Theme returns the UI theme preference. Unset and unreadable both degrade to
// the "system" default.
func (s *Service) Theme(ctx context.Context) string {
	theme, err := s.repo.theme(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "read theme", "error", err)
		return "system"
	}
	return theme
}

// SetTheme stores the UI theme preference. Valid themes are "light", "dark"
// and "system".
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	switch theme {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("invalid theme %q", theme)
	}
	if err := s.repo.setTheme(ctx, theme); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
