package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fitforge/fitforge/internal/export"
	"github.com/fitforge/fitforge/internal/plan"
)

func samplePlan() plan.FitnessPlan {
	return plan.FitnessPlan{
		ID:        "1756700000000",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		UserDetails: plan.UserDetails{
			Name: "Robin",
		},
		WorkoutPlan: plan.WorkoutPlan{
			Title:       "7-Day weight loss Plan",
			Duration:    "7 days",
			DaysPerWeek: 6,
			Workouts: []plan.DayWorkout{
				{
					Day:      "Day 1",
					Focus:    "Full Body",
					Warmup:   []string{"5 minutes light cardio"},
					Duration: "30-45 minutes",
					Exercises: []plan.Exercise{
						{Name: "Push-ups", Sets: 3, Reps: "8-15", RestTime: "60 seconds"},
					},
					Cooldown: []string{"Deep breathing"},
				},
			},
		},
		DietPlan: plan.DietPlan{
			Title:         "7-Day weight loss Nutrition Plan",
			Duration:      "7 days",
			DailyCalories: 1800,
			MacroSplit:    plan.MacroSplit{Protein: 25, Carbs: 35, Fats: 40},
			Meals: []plan.DayMeals{
				{
					Day:           "Day 1",
					TotalCalories: 1465,
					Breakfast: plan.Meal{
						Name:        "Power Breakfast",
						Ingredients: []string{"Oatmeal", "Banana"},
						Calories:    475, Protein: 14, Carbs: 83, Fats: 12,
					},
					Lunch:  plan.Meal{Name: "Protein Lunch", Calories: 497},
					Dinner: plan.Meal{Name: "Balanced Dinner", Calories: 343},
					Snacks: []plan.Meal{{Name: "Healthy Snack", Calories: 150}},
				},
			},
		},
		Tips:       []string{"Stay hydrated"},
		Motivation: "You've got this!",
	}
}

func Test_Markdown(t *testing.T) {
	t.Parallel()

	markdown := export.Markdown(samplePlan())

	for _, want := range []string{
		"# 7-Day weight loss Plan",
		"Created August 1, 2026 for Robin.",
		"### Day 1: Full Body (30-45 minutes)",
		"| Push-ups | 3 | 8-15 | 60 seconds |",
		"1800 kcal per day",
		"25% protein, 35% carbs, 40% fats",
		"**Breakfast**: Power Breakfast (Oatmeal, Banana)",
		"- Stay hydrated",
		"> You've got this!",
	} {
		if !strings.Contains(markdown, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func Test_HTML(t *testing.T) {
	t.Parallel()

	page, err := export.HTML(samplePlan())
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	html := string(page)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>7-Day weight loss Plan</title>",
		"<h1>7-Day weight loss Plan</h1>",
		"<table>",
		"<td>Push-ups</td>",
		"</html>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}
