package main

import (
	"net/http"
	"testing"

	"github.com/fitforge/fitforge/internal/e2etest"
	"github.com/fitforge/fitforge/internal/plan"
	"github.com/google/go-cmp/cmp"
)

func Test_planLifecycle(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := t.Context()

	// No plans yet.
	resp, err := client.Get(ctx, "/api/plans/current")
	if err != nil {
		t.Fatalf("get current plan: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("current plan status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	// Generate a plan. Without AI credentials the template generator answers.
	resp, err = client.PostJSON(ctx, "/api/plans", validPlanRequest())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create plan status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var created plan.FitnessPlan
	if err = e2etest.DecodeJSON(resp, &created); err != nil {
		t.Fatalf("decode created plan: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created plan has no ID")
	}
	if got, want := len(created.WorkoutPlan.Workouts), 7; got != want {
		t.Errorf("workout day count = %d, want %d", got, want)
	}
	if got, want := created.DietPlan.DailyCalories, 1800; got != want {
		t.Errorf("dailyCalories = %d, want %d", got, want)
	}

	// It became the current plan.
	resp, err = client.Get(ctx, "/api/plans/current")
	if err != nil {
		t.Fatalf("get current plan: %v", err)
	}
	var current plan.FitnessPlan
	if err = e2etest.DecodeJSON(resp, &current); err != nil {
		t.Fatalf("decode current plan: %v", err)
	}
	if current.ID != created.ID {
		t.Errorf("current plan ID = %s, want %s", current.ID, created.ID)
	}

	// It shows up in the listing.
	resp, err = client.Get(ctx, "/api/plans")
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	var plans []plan.FitnessPlan
	if err = e2etest.DecodeJSON(resp, &plans); err != nil {
		t.Fatalf("decode plan list: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != created.ID {
		t.Fatalf("plan list = %v, want exactly the created plan", plans)
	}

	// Star and unstar.
	resp, err = client.PostJSON(ctx, "/api/plans/"+created.ID+"/star", nil)
	if err != nil {
		t.Fatalf("star plan: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("star status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
	resp, err = client.Get(ctx, "/api/plans/"+created.ID)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	var starred plan.FitnessPlan
	if err = e2etest.DecodeJSON(resp, &starred); err != nil {
		t.Fatalf("decode starred plan: %v", err)
	}
	if !starred.Starred {
		t.Error("plan should be starred")
	}

	// Delete clears both the listing and the current pointer.
	resp, err = client.Delete(ctx, "/api/plans/"+created.ID)
	if err != nil {
		t.Fatalf("delete plan: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
	resp, err = client.Get(ctx, "/api/plans/current")
	if err != nil {
		t.Fatalf("get current plan: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("current plan status after delete = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func Test_planCreate_validation(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := t.Context()

	request := validPlanRequest()
	request["age"] = 12
	resp, err := client.PostJSON(ctx, "/api/plans", request)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}

	resp, err = client.PostJSON(ctx, "/api/plans", map[string]any{"bogus": true})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown field status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func Test_planExport(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := t.Context()

	resp, err := client.PostJSON(ctx, "/api/plans", validPlanRequest())
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	var created plan.FitnessPlan
	if err = e2etest.DecodeJSON(resp, &created); err != nil {
		t.Fatalf("decode created plan: %v", err)
	}

	resp, err = client.Get(ctx, "/api/plans/"+created.ID+"/export")
	if err != nil {
		t.Fatalf("export markdown: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("markdown export status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got := resp.Header.Get("Content-Type"); got != "text/markdown; charset=utf-8" {
		t.Errorf("markdown content type = %q", got)
	}

	resp, err = client.Get(ctx, "/api/plans/"+created.ID+"/export?format=html")
	if err != nil {
		t.Fatalf("export html: %v", err)
	}
	_ = resp.Body.Close()
	if got := resp.Header.Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("html content type = %q", got)
	}

	resp, err = client.Get(ctx, "/api/plans/"+created.ID+"/export?format=pdf")
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown format status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func Test_planImagePrompts(t *testing.T) {
	t.Parallel()

	// Days repeat exercises and meals, the prompt list must not.
	fitnessPlan := plan.FitnessPlan{
		WorkoutPlan: plan.WorkoutPlan{
			Workouts: []plan.DayWorkout{
				{Exercises: []plan.Exercise{{Name: "Push-ups"}, {Name: "Squats"}}},
				{Exercises: []plan.Exercise{{Name: "Push-ups"}}},
			},
		},
		DietPlan: plan.DietPlan{
			Meals: []plan.DayMeals{
				{
					Breakfast: plan.Meal{Name: "Power Breakfast"},
					Lunch:     plan.Meal{Name: "Protein Lunch"},
					Dinner:    plan.Meal{Name: "Balanced Dinner"},
					Snacks:    []plan.Meal{{Name: "Healthy Snack"}},
				},
				{
					Breakfast: plan.Meal{Name: "Power Breakfast"},
					Lunch:     plan.Meal{Name: "Protein Lunch"},
					Dinner:    plan.Meal{Name: "Balanced Dinner"},
				},
			},
		},
	}

	want := []string{
		"Push-ups exercise fitness gym demonstration realistic",
		"Squats exercise fitness gym demonstration realistic",
		"Power Breakfast healthy food meal delicious professional food photography",
		"Protein Lunch healthy food meal delicious professional food photography",
		"Balanced Dinner healthy food meal delicious professional food photography",
		"Healthy Snack healthy food meal delicious professional food photography",
	}
	if diff := cmp.Diff(want, planImagePrompts(fitnessPlan)); diff != "" {
		t.Errorf("planImagePrompts() mismatch (-want +got):\n%s", diff)
	}
}
