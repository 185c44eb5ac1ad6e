package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_templateGenerator_weightLoss(t *testing.T) {
	t.Parallel()

	details := UserDetails{
		Name:              "Alice",
		Age:               30,
		Gender:            GenderFemale,
		HeightCm:          165,
		WeightKg:          70,
		FitnessGoal:       GoalWeightLoss,
		FitnessLevel:      LevelBeginner,
		WorkoutLocation:   LocationHome,
		DietaryPreference: DietVegetarian,
		PlanDays:          7,
	}

	content, err := templateGenerator{}.Generate(t.Context(), details)
	if err != nil {
		t.Fatalf("template generation failed: %v", err)
	}

	if got, want := content.WorkoutPlan.Title, "7-Day weight loss Plan"; got != want {
		t.Errorf("workout title = %q, want %q", got, want)
	}
	if got, want := content.WorkoutPlan.DaysPerWeek, 6; got != want {
		t.Errorf("daysPerWeek = %d, want %d", got, want)
	}
	if got, want := len(content.WorkoutPlan.Workouts), 7; got != want {
		t.Fatalf("workout day count = %d, want %d", got, want)
	}
	if got, want := len(content.DietPlan.Meals), 7; got != want {
		t.Fatalf("meal day count = %d, want %d", got, want)
	}
	if got, want := content.DietPlan.DailyCalories, 1800; got != want {
		t.Errorf("dailyCalories = %d, want %d", got, want)
	}
	wantSplit := MacroSplit{Protein: 25, Carbs: 35, Fats: 40}
	if diff := cmp.Diff(wantSplit, content.DietPlan.MacroSplit); diff != "" {
		t.Errorf("macro split mismatch (-want +got):\n%s", diff)
	}

	// Day templates cycle: four workout templates, three meal templates.
	if got, want := content.WorkoutPlan.Workouts[4].Focus, content.WorkoutPlan.Workouts[0].Focus; got != want {
		t.Errorf("day 5 focus = %q, want repeat of day 1 %q", got, want)
	}
	if got, want := content.DietPlan.Meals[3].Breakfast.Name, content.DietPlan.Meals[0].Breakfast.Name; got != want {
		t.Errorf("day 4 breakfast = %q, want repeat of day 1 %q", got, want)
	}
	for i, workout := range content.WorkoutPlan.Workouts {
		if got, want := workout.Day, []string{
			"Day 1", "Day 2", "Day 3", "Day 4", "Day 5", "Day 6", "Day 7",
		}[i]; got != want {
			t.Errorf("workout day label = %q, want %q", got, want)
		}
	}

	if len(content.Tips) == 0 || content.Motivation == "" {
		t.Error("tips and motivation must be populated")
	}
}

func Test_templateGenerator_mealTotals(t *testing.T) {
	t.Parallel()

	details := UserDetails{
		Name:              "Bob",
		Age:               40,
		Gender:            GenderMale,
		HeightCm:          180,
		WeightKg:          90,
		FitnessGoal:       GoalMuscleGain,
		FitnessLevel:      LevelIntermediate,
		WorkoutLocation:   LocationGym,
		DietaryPreference: DietNonVegetarian,
		PlanDays:          3,
	}

	content, err := templateGenerator{}.Generate(t.Context(), details)
	if err != nil {
		t.Fatalf("template generation failed: %v", err)
	}

	if got, want := content.DietPlan.DailyCalories, 2400; got != want {
		t.Errorf("dailyCalories = %d, want %d", got, want)
	}
	if got, want := content.DietPlan.MacroSplit.Protein, 35; got != want {
		t.Errorf("protein split = %d, want %d", got, want)
	}

	for _, day := range content.DietPlan.Meals {
		meals := []Meal{day.Breakfast, day.Lunch, day.Dinner}
		meals = append(meals, day.Snacks...)
		var calories, protein, carbs, fats int
		for _, meal := range meals {
			calories += meal.Calories
			protein += meal.Protein
			carbs += meal.Carbs
			fats += meal.Fats
		}
		if day.TotalCalories != calories {
			t.Errorf("%s totalCalories = %d, want sum %d", day.Day, day.TotalCalories, calories)
		}
		if day.TotalProtein != protein || day.TotalCarbs != carbs || day.TotalFats != fats {
			t.Errorf("%s macro totals do not match meal sums", day.Day)
		}
	}
}

func Test_templateGenerator_deterministic(t *testing.T) {
	t.Parallel()

	details := UserDetails{
		Name:              "Cara",
		Age:               25,
		Gender:            GenderOther,
		HeightCm:          170,
		WeightKg:          65,
		FitnessGoal:       GoalMaintain,
		FitnessLevel:      LevelAdvanced,
		WorkoutLocation:   LocationOutdoor,
		DietaryPreference: DietVegan,
		PlanDays:          10,
	}

	first, err := templateGenerator{}.Generate(t.Context(), details)
	if err != nil {
		t.Fatalf("template generation failed: %v", err)
	}
	second, err := templateGenerator{}.Generate(t.Context(), details)
	if err != nil {
		t.Fatalf("template generation failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("template generation is not deterministic (-first +second):\n%s", diff)
	}
}
