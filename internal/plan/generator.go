package plan

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/fitforge/fitforge/internal/errors"
)

// Generator produces plan content for validated user details. Implementations
// must be safe for concurrent use.
type Generator interface {
	// Name identifies the generator in logs.
	Name() string
	Generate(ctx context.Context, details UserDetails) (Content, error)
}

// cascade tries its generators in order and returns the first success.
// Failures are logged and swallowed. The last generator is expected to be
// infallible so the cascade as a whole never fails.
type cascade struct {
	generators []Generator
	logger     *slog.Logger
}

func (c cascade) Generate(ctx context.Context, details UserDetails) Content {
	for i, generator := range c.generators {
		content, err := generator.Generate(ctx, details)
		if err != nil {
			level := slog.LevelWarn
			if i == len(c.generators)-1 {
				// Out of fallbacks, this should not happen.
				level = slog.LevelError
			}
			c.logger.LogAttrs(ctx, level, "plan generation failed",
				slog.String("generator", generator.Name()),
				slog.Any("error", err))
			continue
		}
		c.logger.LogAttrs(ctx, slog.LevelInfo, "plan generated",
			slog.String("generator", generator.Name()))
		return content
	}
	// Unreachable as long as the template generator terminates the chain, but
	// keep a sane zero-config default anyway.
	content, _ := templateGenerator{}.Generate(ctx, details)
	return content
}

// decodeContent parses a model response into plan content. Models occasionally
// wrap the JSON in markdown fences despite instructions, so fences are
// stripped before parsing. Responses missing any of the four top-level
// sections are rejected.
func decodeContent(raw string) (Content, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var content Content
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return Content{}, errors.Wrap(err, "parse model response",
			slog.Int("response_length", len(raw)))
	}
	if len(content.WorkoutPlan.Workouts) == 0 {
		return Content{}, errors.New("model response missing workout plan")
	}
	if len(content.DietPlan.Meals) == 0 {
		return Content{}, errors.New("model response missing diet plan")
	}
	if len(content.Tips) == 0 {
		return Content{}, errors.New("model response missing tips")
	}
	if content.Motivation == "" {
		return Content{}, errors.New("model response missing motivation")
	}
	return content, nil
}

// placeholder API keys from example env files must not count as configured.
func credentialConfigured(key string) bool {
	return key != "" && !(strings.HasPrefix(key, "your_") && strings.HasSuffix(key, "_here"))
}
