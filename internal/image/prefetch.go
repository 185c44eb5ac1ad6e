package image

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const prefetchConcurrency = 4

// Prefetch warms the finder's cache for a batch of prompts, typically every
// exercise and meal name of a freshly generated plan. Lookups run
// concurrently with a small random stagger to avoid hammering the image
// providers in one burst. Individual lookups cannot fail, so the returned map
// always has an entry per distinct prompt.
func Prefetch(ctx context.Context, finder *Finder, prompts []string) map[string]string {
	var (
		mu      sync.Mutex
		results = make(map[string]string, len(prompts))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)
	for _, prompt := range prompts {
		g.Go(func() error {
			jitter := time.Duration(rand.IntN(500)) * time.Millisecond
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(jitter):
			}
			url := finder.Find(ctx, prompt)
			mu.Lock()
			results[prompt] = url
			mu.Unlock()
			return nil
		})
	}
	// The only possible error is context cancellation, in which case the
	// partial results are still useful.
	_ = g.Wait()
	return results
}
