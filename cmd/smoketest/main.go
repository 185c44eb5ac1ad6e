package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fitforge/fitforge/internal/e2etest"
	"github.com/fitforge/fitforge/internal/logging"
	"github.com/fitforge/fitforge/internal/testhelpers"
)

const smokeTimeout = 30 * time.Second

// testPlanLifecycle generates a plan, reads it back and deletes it so that
// repeated smoke runs against the same environment do not accumulate plans.
func testPlanLifecycle(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), smokeTimeout)
	defer cancel()

	details := map[string]any{
		"name":              "Smoke Tester",
		"age":               32,
		"gender":            "female",
		"height":            167,
		"weight":            72,
		"fitnessGoal":       "weight_loss",
		"fitnessLevel":      "beginner",
		"workoutLocation":   "home",
		"dietaryPreference": "vegetarian",
		"planDays":          7,
	}

	resp, err := client.PostJSON(ctx, "/api/plans", details)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		_ = resp.Body.Close()
		return fmt.Errorf("create plan: unexpected status %d", resp.StatusCode)
	}
	var plan struct {
		ID          string `json:"id"`
		WorkoutPlan struct {
			Workouts []any `json:"workouts"`
		} `json:"workoutPlan"`
	}
	if err = e2etest.DecodeJSON(resp, &plan); err != nil {
		return fmt.Errorf("decode plan: %w", err)
	}
	if plan.ID == "" || len(plan.WorkoutPlan.Workouts) == 0 {
		return fmt.Errorf("plan missing id or workouts: %+v", plan)
	}

	if resp, err = client.Get(ctx, "/api/plans/current"); err != nil {
		return fmt.Errorf("get current plan: %w", err)
	}
	var current struct {
		ID string `json:"id"`
	}
	if err = e2etest.DecodeJSON(resp, &current); err != nil {
		return fmt.Errorf("decode current plan: %w", err)
	}
	if current.ID != plan.ID {
		return fmt.Errorf("current plan %q does not match created plan %q", current.ID, plan.ID)
	}

	if resp, err = client.Delete(ctx, "/api/plans/"+plan.ID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete plan: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func testReadEndpoints(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), smokeTimeout)
	defer cancel()

	resp, err := client.Get(ctx, "/api/quote")
	if err != nil {
		return fmt.Errorf("get quote: %w", err)
	}
	var quote struct {
		Text string `json:"text"`
	}
	if err = e2etest.DecodeJSON(resp, &quote); err != nil {
		return fmt.Errorf("decode quote: %w", err)
	}
	if quote.Text == "" {
		return fmt.Errorf("empty quote")
	}

	if resp, err = client.Get(ctx, "/api/images?prompt=Push-ups+exercise"); err != nil {
		return fmt.Errorf("get image: %w", err)
	}
	var image struct {
		URL string `json:"url"`
	}
	if err = e2etest.DecodeJSON(resp, &image); err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	if !strings.HasPrefix(image.URL, "https://") {
		return fmt.Errorf("unexpected image url %q", image.URL)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	client := e2etest.NewClient(url)
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = testPlanLifecycle(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing plan lifecycle", slog.Any("error", err))
		os.Exit(1)
	}
	if err = testReadEndpoints(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing read endpoints", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
