// Command stresstest hammers a running server with concurrent plan
// generation scenarios and fails when too many of them error out. Point it
// at an environment without AI provider keys so generation bottoms out on
// the template generator, otherwise the run burns provider quota.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fitforge/fitforge/internal/e2etest"
	"github.com/fitforge/fitforge/internal/logging"
	"github.com/fitforge/fitforge/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 30 * time.Second
	maxConcurrentScenarios  = 20
	numScenarios            = 50
	successRateThreshold    = 95.0
	percentageMultiplier    = 100
	expectedArgsCount       = 2
	minScenarioAge          = 18
	ageRange                = 50
	minScenarioPlanDays     = 3
	planDaysRange           = 12
	latencyReportPercentile = 0.95
)

var (
	goals     = []string{"weight_loss", "muscle_gain", "maintain", "endurance", "strength"}
	levels    = []string{"beginner", "intermediate", "advanced"}
	locations = []string{"home", "gym", "outdoor"}
	diets     = []string{"vegetarian", "non_vegetarian", "vegan", "keto", "paleo"}
	genders   = []string{"male", "female", "other"}
)

// randomDetails builds a plausible plan request so successive scenarios do
// not all hit the same generation path.
func randomDetails(i int) map[string]any {
	return map[string]any{
		"name":              fmt.Sprintf("Load Tester %d", i),
		"age":               minScenarioAge + rand.IntN(ageRange),
		"gender":            genders[rand.IntN(len(genders))],
		"height":            150 + rand.IntN(50),
		"weight":            50 + rand.IntN(70),
		"fitnessGoal":       goals[rand.IntN(len(goals))],
		"fitnessLevel":      levels[rand.IntN(len(levels))],
		"workoutLocation":   locations[rand.IntN(len(locations))],
		"dietaryPreference": diets[rand.IntN(len(diets))],
		"planDays":          minScenarioPlanDays + rand.IntN(planDaysRange),
	}
}

// planScenario runs one full user journey: generate a plan, read it back,
// fetch an exercise image and a quote, then delete the plan.
func planScenario(ctx context.Context, client *e2etest.Client, i int) error {
	resp, err := client.PostJSON(ctx, "/api/plans", randomDetails(i))
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		_ = resp.Body.Close()
		return fmt.Errorf("create plan: unexpected status %d", resp.StatusCode)
	}
	var plan struct {
		ID string `json:"id"`
	}
	if err = e2etest.DecodeJSON(resp, &plan); err != nil {
		return fmt.Errorf("decode plan: %w", err)
	}
	if plan.ID == "" {
		return fmt.Errorf("plan missing id")
	}

	if resp, err = client.Get(ctx, "/api/plans/"+plan.ID); err != nil {
		return fmt.Errorf("get plan: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get plan: unexpected status %d", resp.StatusCode)
	}

	if resp, err = client.Get(ctx, "/api/images?prompt=Squats+exercise+gym"); err != nil {
		return fmt.Errorf("get image: %w", err)
	}
	_ = resp.Body.Close()

	if resp, err = client.Get(ctx, "/api/quote"); err != nil {
		return fmt.Errorf("get quote: %w", err)
	}
	_ = resp.Body.Close()

	if resp, err = client.Delete(ctx, "/api/plans/"+plan.ID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete plan: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func runLoadTest(ctx context.Context, url string, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("num_scenarios", numScenarios))

	var (
		successCount, failureCount int64
		latencyMu                  sync.Mutex
		latencies                  []time.Duration
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScenarios)

	for i := range numScenarios {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			client := e2etest.NewClient(url)
			start := time.Now()
			if err := planScenario(scenarioCtx, client, i); err != nil {
				atomic.AddInt64(&failureCount, 1)
				// Log individual failures but don't stop the entire test
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.Int("scenario", i),
					slog.Any("error", err))
				return nil
			}

			atomic.AddInt64(&successCount, 1)
			latencyMu.Lock()
			latencies = append(latencies, time.Since(start))
			latencyMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount) / float64(numScenarios) * percentageMultiplier

	attrs := []slog.Attr{
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate),
	}
	if len(latencies) > 0 {
		sort.Slice(latencies, func(a, b int) bool { return latencies[a] < latencies[b] })
		p95 := latencies[int(float64(len(latencies)-1)*latencyReportPercentile)]
		attrs = append(attrs,
			slog.Duration("latency_median", latencies[len(latencies)/2]),
			slog.Duration("latency_p95", p95))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed", attrs...)

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)

	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	client := e2etest.NewClient(url)

	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	// One sequential scenario first so an obviously broken deployment fails
	// fast instead of producing fifty identical errors.
	warmupCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
	if err := planScenario(warmupCtx, client, 0); err != nil {
		cancel()
		logger.LogAttrs(ctx, slog.LevelError, "warmup scenario failed", slog.Any("error", err))
		os.Exit(1)
	}
	cancel()
	logger.LogAttrs(ctx, slog.LevelInfo, "Warmup scenario passed ✓")

	if err := runLoadTest(ctx, url, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)))
}
