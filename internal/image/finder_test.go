package image_test

import (
	"testing"

	"github.com/fitforge/fitforge/internal/image"
	"github.com/fitforge/fitforge/internal/testhelpers"
)

func Test_Finder_cachesNormalizedPrompts(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	// No Replicate token, so resolution is the deterministic keyword table.
	finder := image.NewFinder("", logger)

	first := finder.Find(ctx, "Push-ups exercise demonstration")
	second := finder.Find(ctx, "  PUSH-UPS EXERCISE DEMONSTRATION  ")
	if first != second {
		t.Errorf("normalized prompts should hit the same cache entry: %s != %s", first, second)
	}
}

func Test_Finder_placeholderTokenDisablesReplicate(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	// A placeholder token must not trigger network calls; the keyword table
	// answers immediately.
	finder := image.NewFinder("your_replicate_api_token_here", logger)
	got := finder.Find(ctx, "Squats exercise")
	want := "https://images.unsplash.com/photo-1566351671647-63d7e2bfba74?w=400&h=300&fit=crop&crop=center&q=80"
	if got != want {
		t.Errorf("Find() = %s, want %s", got, want)
	}
}

func Test_Prefetch_coversAllPrompts(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	finder := image.NewFinder("", logger)
	prompts := []string{
		"Push-ups exercise",
		"Squats exercise",
		"Grilled Chicken healthy meal",
		"Power Breakfast healthy meal",
	}

	results := image.Prefetch(ctx, finder, prompts)

	if len(results) != len(prompts) {
		t.Fatalf("Prefetch() returned %d results, want %d", len(results), len(prompts))
	}
	for _, prompt := range prompts {
		if results[prompt] == "" {
			t.Errorf("missing result for prompt %q", prompt)
		}
	}
}
