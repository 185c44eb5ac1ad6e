package quote_test

import (
	"testing"

	"github.com/fitforge/fitforge/internal/quote"
	"github.com/fitforge/fitforge/internal/testhelpers"
)

func Test_Get_curatedFallback(t *testing.T) {
	t.Parallel()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	// No API key, so every Get must come from the curated list.
	svc := quote.NewService("", logger)
	known := make(map[string]bool)
	for _, q := range svc.List() {
		known[q.Text] = true
	}

	for range 20 {
		got := svc.Get(t.Context())
		if got.Text == "" {
			t.Fatal("Get() returned an empty quote")
		}
		if !known[got.Text] {
			t.Fatalf("Get() returned %q which is not in the curated list", got.Text)
		}
	}
}

func Test_Get_placeholderKeyUsesCurated(t *testing.T) {
	t.Parallel()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	svc := quote.NewService("your_openai_api_key_here", logger)
	if got := svc.Get(t.Context()); got.Text == "" {
		t.Error("Get() returned an empty quote")
	}
}

func Test_List_isACopy(t *testing.T) {
	t.Parallel()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	svc := quote.NewService("", logger)
	first := svc.List()
	first[0].Text = "mutated"

	if svc.List()[0].Text == "mutated" {
		t.Error("List() must return a copy, not the backing slice")
	}
}
