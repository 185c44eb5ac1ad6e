package plan_test

import (
	"errors"
	"testing"

	"github.com/fitforge/fitforge/internal/plan"
	"github.com/fitforge/fitforge/internal/ptr"
	"github.com/fitforge/fitforge/internal/sqlite"
	"github.com/fitforge/fitforge/internal/testhelpers"
	"github.com/google/go-cmp/cmp"
)

func newTestService(t *testing.T) (*plan.Service, *sqlite.Database) {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	// No credentials configured, so generation always lands on the templates.
	return plan.NewService(db, logger, plan.Config{}), db
}

func weightLossDetails() plan.UserDetails {
	return plan.UserDetails{
		Name:              "Taylor",
		Age:               32,
		Gender:            plan.GenderFemale,
		HeightCm:          167,
		WeightKg:          72,
		FitnessGoal:       plan.GoalWeightLoss,
		FitnessLevel:      plan.LevelBeginner,
		WorkoutLocation:   plan.LocationHome,
		DietaryPreference: plan.DietVegetarian,
		PlanDays:          7,
		SleepHours:        ptr.Ref(7.5),
		WaterIntakeLiters: ptr.Ref(2.5),
	}
}

func Test_Generate_templateFallback(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	svc, _ := newTestService(t)

	generated, err := svc.Generate(ctx, weightLossDetails())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if generated.ID == "" {
		t.Error("generated plan must have an ID")
	}
	if got, want := len(generated.WorkoutPlan.Workouts), 7; got != want {
		t.Errorf("workout day count = %d, want %d", got, want)
	}
	if got, want := len(generated.DietPlan.Meals), 7; got != want {
		t.Errorf("meal day count = %d, want %d", got, want)
	}
	if got, want := generated.DietPlan.DailyCalories, 1800; got != want {
		t.Errorf("dailyCalories = %d, want %d", got, want)
	}
	wantSplit := plan.MacroSplit{Protein: 25, Carbs: 35, Fats: 40}
	if diff := cmp.Diff(wantSplit, generated.DietPlan.MacroSplit); diff != "" {
		t.Errorf("macro split mismatch (-want +got):\n%s", diff)
	}

	// Generating also persists and marks the plan current.
	current, ok := svc.Current(ctx)
	if !ok {
		t.Fatal("expected a current plan after generation")
	}
	if diff := cmp.Diff(generated, current); diff != "" {
		t.Errorf("current plan mismatch (-generated +current):\n%s", diff)
	}
}

func Test_Generate_invalidDetails(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	svc, _ := newTestService(t)

	tests := []struct {
		name   string
		mutate func(*plan.UserDetails)
	}{
		{"age too low", func(d *plan.UserDetails) { d.Age = 15 }},
		{"age too high", func(d *plan.UserDetails) { d.Age = 101 }},
		{"height out of range", func(d *plan.UserDetails) { d.HeightCm = 119 }},
		{"weight out of range", func(d *plan.UserDetails) { d.WeightKg = 301 }},
		{"zero plan days", func(d *plan.UserDetails) { d.PlanDays = 0 }},
		{"too many plan days", func(d *plan.UserDetails) { d.PlanDays = 31 }},
		{"unknown goal", func(d *plan.UserDetails) { d.FitnessGoal = "get_swole" }},
		{"empty name", func(d *plan.UserDetails) { d.Name = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			details := weightLossDetails()
			tt.mutate(&details)
			if _, err := svc.Generate(ctx, details); err == nil {
				t.Error("Generate() succeeded, want validation error")
			}
		})
	}
}

func Test_List_newestFirstAndReplace(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	svc, _ := newTestService(t)

	first, err := svc.Generate(ctx, weightLossDetails())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	details := weightLossDetails()
	details.FitnessGoal = plan.GoalMuscleGain
	second, err := svc.Generate(ctx, details)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	plans := svc.List(ctx)
	if first.ID == second.ID {
		// Same-millisecond generation produces the same ID and the second
		// save replaces the first.
		if len(plans) != 1 {
			t.Fatalf("List() returned %d plans after ID collision, want 1", len(plans))
		}
		if plans[0].DietPlan.DailyCalories != second.DietPlan.DailyCalories {
			t.Error("replacement save should win on ID collision")
		}
		return
	}
	if len(plans) != 2 {
		t.Fatalf("List() returned %d plans, want 2", len(plans))
	}
	if plans[0].ID != second.ID {
		t.Errorf("List()[0].ID = %s, want newest %s", plans[0].ID, second.ID)
	}
}

func Test_Delete_clearsCurrent(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	svc, _ := newTestService(t)

	generated, err := svc.Generate(ctx, weightLossDetails())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if err := svc.Delete(ctx, generated.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, ok := svc.Current(ctx); ok {
		t.Error("current plan should be cleared when the current plan is deleted")
	}
	if plans := svc.List(ctx); len(plans) != 0 {
		t.Errorf("List() returned %d plans after delete, want 0", len(plans))
	}

	// Deleting an unknown ID is a no-op.
	if err := svc.Delete(ctx, "does-not-exist"); err != nil {
		t.Errorf("Delete() of unknown ID returned %v, want nil", err)
	}
}

func Test_SetStarred(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	svc, _ := newTestService(t)

	generated, err := svc.Generate(ctx, weightLossDetails())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if err := svc.SetStarred(ctx, generated.ID, true); err != nil {
		t.Fatalf("SetStarred() error = %v", err)
	}
	starred, err := svc.Get(ctx, generated.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !starred.Starred {
		t.Error("plan should be starred")
	}

	if err := svc.SetStarred(ctx, generated.ID, false); err != nil {
		t.Fatalf("SetStarred() error = %v", err)
	}
	unstarred, err := svc.Get(ctx, generated.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if unstarred.Starred {
		t.Error("plan should not be starred anymore")
	}

	if err := svc.SetStarred(ctx, "does-not-exist", true); !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("SetStarred() of unknown ID = %v, want ErrNotFound", err)
	}
}

func Test_Theme(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	svc, _ := newTestService(t)

	if got, want := svc.Theme(ctx), "system"; got != want {
		t.Errorf("default theme = %q, want %q", got, want)
	}

	if err := svc.SetTheme(ctx, "dark"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if got, want := svc.Theme(ctx), "dark"; got != want {
		t.Errorf("theme = %q, want %q", got, want)
	}

	if err := svc.SetTheme(ctx, "blue"); err == nil {
		t.Error("SetTheme() accepted invalid theme")
	}
}

func Test_Generate_storesDocumentAsText(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	svc, db := newTestService(t)

	// The plans table is STRICT with a TEXT document column, so a []byte
	// bind (stored as BLOB) would make every save fail. Assert on the stored
	// type to keep the bind honest.
	generated, err := svc.Generate(ctx, weightLossDetails())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var storedType string
	err = db.ReadOnly.QueryRowContext(ctx, `
		SELECT typeof(document) FROM plans WHERE id = ?`, generated.ID).Scan(&storedType)
	if err != nil {
		t.Fatalf("query document type: %v", err)
	}
	if storedType != "text" {
		t.Errorf("document stored as %q, want %q", storedType, "text")
	}

	if err = svc.SetStarred(ctx, generated.ID, true); err != nil {
		t.Fatalf("SetStarred() error = %v", err)
	}
	err = db.ReadOnly.QueryRowContext(ctx, `
		SELECT typeof(document) FROM plans WHERE id = ?`, generated.ID).Scan(&storedType)
	if err != nil {
		t.Fatalf("query document type after starring: %v", err)
	}
	if storedType != "text" {
		t.Errorf("document stored as %q after starring, want %q", storedType, "text")
	}
}

func Test_List_skipsCorruptDocuments(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	svc, db := newTestService(t)

	if _, err := svc.Generate(ctx, weightLossDetails()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Simulate a row written by a broken or older version.
	_, err := db.ReadWrite.ExecContext(ctx, `
		INSERT INTO plans (id, created_at, starred, document)
		VALUES ('corrupt', '2026-01-01T00:00:00.000Z', 0, 'not json')`)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	plans := svc.List(ctx)
	if len(plans) != 1 {
		t.Fatalf("List() returned %d plans, want 1 (corrupt row skipped)", len(plans))
	}
	if plans[0].ID == "corrupt" {
		t.Error("corrupt row leaked into the listing")
	}
}
