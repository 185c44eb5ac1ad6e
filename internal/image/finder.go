package image

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Finder resolves prompts to image URLs. Results are cached per normalized
// prompt so repeated lookups for the same exercise or meal are free. Find
// never fails: when Replicate is unavailable or errors, the curated keyword
// table answers instead.
type Finder struct {
	replicate *replicateClient
	logger    *slog.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewFinder builds a Finder. An empty or placeholder Replicate token disables
// AI generation and leaves only the keyword table.
func NewFinder(replicateToken string, logger *slog.Logger) *Finder {
	f := &Finder{
		logger: logger,
		cache:  make(map[string]string),
	}
	if replicateToken != "" && replicateToken != "your_replicate_api_token_here" {
		f.replicate = newReplicateClient(replicateToken, logger)
	}
	return f
}

// Find returns an image URL for the prompt.
func (f *Finder) Find(ctx context.Context, prompt string) string {
	normalized := strings.ToLower(strings.TrimSpace(prompt))

	f.mu.Lock()
	if url, ok := f.cache[normalized]; ok {
		f.mu.Unlock()
		return url
	}
	f.mu.Unlock()

	url := f.resolve(ctx, normalized)

	f.mu.Lock()
	f.cache[normalized] = url
	f.mu.Unlock()
	return url
}

func (f *Finder) resolve(ctx context.Context, prompt string) string {
	if f.replicate != nil {
		url, err := f.replicate.generate(ctx, prompt)
		if err == nil {
			return url
		}
		f.logger.WarnContext(ctx, "replicate generation failed, using stock photo",
			"error", err)
	}
	return Lookup(prompt)
}
