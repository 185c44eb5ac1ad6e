package plan

import (
	"context"
	"fmt"
)

// templateGenerator is the deterministic generator of last resort. It builds a
// plan from bodyweight-friendly workout and meal templates and therefore never
// fails, which keeps the generation cascade total.
type templateGenerator struct{}

func (templateGenerator) Name() string { return "template" }

func (templateGenerator) Generate(_ context.Context, details UserDetails) (Content, error) {
	days := details.PlanDays
	goal := goalLabel(details.FitnessGoal)

	dailyCalories := 2100
	switch details.FitnessGoal {
	case GoalWeightLoss:
		dailyCalories = 1800
	case GoalMuscleGain:
		dailyCalories = 2400
	}

	return Content{
		WorkoutPlan: WorkoutPlan{
			Title:       fmt.Sprintf("%d-Day %s Plan", days, goal),
			Duration:    fmt.Sprintf("%d days", days),
			DaysPerWeek: min(days, 6),
			Workouts:    templateWorkouts(days),
		},
		DietPlan: DietPlan{
			Title:         fmt.Sprintf("%d-Day %s Nutrition Plan", days, goal),
			Duration:      fmt.Sprintf("%d days", days),
			DailyCalories: dailyCalories,
			MacroSplit:    macroSplitFor(details.FitnessGoal),
			Meals:         templateMeals(days),
		},
		Tips: []string{
			"Stay hydrated - drink at least 8 glasses of water daily",
			"Get 7-9 hours of quality sleep each night",
			"Warm up before exercising and cool down afterward",
			"Listen to your body and rest when needed",
			"Track your progress with photos and measurements",
			"Be consistent - small daily actions lead to big results",
			fmt.Sprintf("Plan ahead - you have %d days to build healthy habits!", days),
			"Meal prep on weekends to stay consistent with your nutrition",
		},
		Motivation: fmt.Sprintf("Great job starting your %d-day %s journey! "+
			"Remember, every expert was once a beginner. Stay consistent, be patient "+
			"with yourself, and celebrate small wins along the way. You've got this!",
			days, goal),
	}, nil
}

// templateWorkouts cycles through the four workout day templates for the
// requested number of days.
func templateWorkouts(days int) []DayWorkout {
	workouts := make([]DayWorkout, 0, days)
	for i := range days {
		tmpl := workoutDayTemplates[i%len(workoutDayTemplates)]
		workouts = append(workouts, DayWorkout{
			Day:       fmt.Sprintf("Day %d", i+1),
			Focus:     tmpl.focus,
			Warmup:    []string{"5 minutes light cardio", "Dynamic stretching", "Arm circles"},
			Exercises: tmpl.exercises,
			Cooldown:  []string{"5 minutes light stretching", "Deep breathing", "Cool-down walk"},
			Duration:  "30-45 minutes",
		})
	}
	return workouts
}

// templateMeals cycles through the three meal day templates and computes day
// totals from the meals.
func templateMeals(days int) []DayMeals {
	meals := make([]DayMeals, 0, days)
	for i := range days {
		tmpl := mealDayTemplates[i%len(mealDayTemplates)]
		day := DayMeals{
			Day:       fmt.Sprintf("Day %d", i+1),
			Breakfast: tmpl.breakfast,
			Lunch:     tmpl.lunch,
			Dinner:    tmpl.dinner,
			Snacks:    []Meal{tmpl.snack},
		}
		for _, meal := range []Meal{tmpl.breakfast, tmpl.lunch, tmpl.dinner, tmpl.snack} {
			day.TotalCalories += meal.Calories
			day.TotalProtein += meal.Protein
			day.TotalCarbs += meal.Carbs
			day.TotalFats += meal.Fats
		}
		meals = append(meals, day)
	}
	return meals
}

type workoutDayTemplate struct {
	focus     string
	exercises []Exercise
}

var workoutDayTemplates = []workoutDayTemplate{
	{
		focus: "Full Body",
		exercises: []Exercise{
			{
				Name:         "Push-ups",
				Sets:         3,
				Reps:         "8-15",
				RestTime:     "60 seconds",
				Instructions: "Start in plank position, lower chest to ground, push back up. Keep core tight.",
				MuscleGroups: []string{"Chest", "Shoulders", "Triceps"},
				Equipment:    "None",
			},
			{
				Name:         "Squats",
				Sets:         3,
				Reps:         "12-20",
				RestTime:     "60 seconds",
				Instructions: "Stand feet shoulder-width apart, lower hips back and down, return to standing.",
				MuscleGroups: []string{"Quadriceps", "Glutes", "Hamstrings"},
				Equipment:    "None",
			},
			{
				Name:         "Plank Hold",
				Sets:         3,
				Reps:         "30-60 seconds",
				RestTime:     "45 seconds",
				Instructions: "Hold push-up position with forearms on ground. Keep body straight.",
				MuscleGroups: []string{"Core", "Shoulders"},
				Equipment:    "None",
			},
		},
	},
	{
		focus: "Upper Body",
		exercises: []Exercise{
			{
				Name:         "Pike Push-ups",
				Sets:         3,
				Reps:         "8-12",
				RestTime:     "60 seconds",
				Instructions: "Start in downward dog position, lower head towards hands, push back up.",
				MuscleGroups: []string{"Shoulders", "Triceps", "Upper Chest"},
				Equipment:    "None",
			},
			{
				Name:         "Tricep Dips",
				Sets:         3,
				Reps:         "10-15",
				RestTime:     "60 seconds",
				Instructions: "Use chair or bench, lower body by bending arms, push back up.",
				MuscleGroups: []string{"Triceps", "Shoulders"},
				Equipment:    "Chair/Bench",
			},
			{
				Name:         "Mountain Climbers",
				Sets:         3,
				Reps:         "20-30",
				RestTime:     "60 seconds",
				Instructions: "From plank position, alternate bringing knees to chest quickly.",
				MuscleGroups: []string{"Core", "Cardiovascular"},
				Equipment:    "None",
			},
		},
	},
	{
		focus: "Lower Body",
		exercises: []Exercise{
			{
				Name:         "Lunges",
				Sets:         3,
				Reps:         "10 each leg",
				RestTime:     "60 seconds",
				Instructions: "Step forward, lower body until both knees at 90 degrees, return to start.",
				MuscleGroups: []string{"Quadriceps", "Glutes", "Hamstrings"},
				Equipment:    "None",
			},
			{
				Name:         "Glute Bridges",
				Sets:         3,
				Reps:         "15-20",
				RestTime:     "45 seconds",
				Instructions: "Lie on back, lift hips by squeezing glutes, hold briefly, lower.",
				MuscleGroups: []string{"Glutes", "Hamstrings", "Core"},
				Equipment:    "None",
			},
			{
				Name:         "Calf Raises",
				Sets:         3,
				Reps:         "15-25",
				RestTime:     "45 seconds",
				Instructions: "Rise up on balls of feet, hold briefly, lower with control.",
				MuscleGroups: []string{"Calves"},
				Equipment:    "None",
			},
		},
	},
	{
		focus: "Core & Cardio",
		exercises: []Exercise{
			{
				Name:         "Burpees",
				Sets:         3,
				Reps:         "8-12",
				RestTime:     "90 seconds",
				Instructions: "Squat down, jump back to plank, do push-up, jump feet to hands, jump up.",
				MuscleGroups: []string{"Full Body", "Cardiovascular"},
				Equipment:    "None",
			},
			{
				Name:         "Russian Twists",
				Sets:         3,
				Reps:         "20-30",
				RestTime:     "60 seconds",
				Instructions: "Sit leaning back, lift feet, rotate torso side to side.",
				MuscleGroups: []string{"Core", "Obliques"},
				Equipment:    "None",
			},
			{
				Name:         "High Knees",
				Sets:         3,
				Reps:         "30 seconds",
				RestTime:     "60 seconds",
				Instructions: "Run in place lifting knees as high as possible.",
				MuscleGroups: []string{"Cardiovascular", "Core"},
				Equipment:    "None",
			},
		},
	},
}

type mealDayTemplate struct {
	breakfast Meal
	lunch     Meal
	dinner    Meal
	snack     Meal
}

var mealDayTemplates = []mealDayTemplate{
	{
		breakfast: Meal{
			Name:        "Power Breakfast",
			Ingredients: []string{"Oatmeal", "Banana", "Almonds"},
			Calories:    475, Protein: 14, Carbs: 83, Fats: 12,
		},
		lunch: Meal{
			Name:        "Protein Lunch",
			Ingredients: []string{"Grilled Chicken", "Brown Rice", "Mixed Vegetables"},
			Calories:    497, Protein: 50, Carbs: 55, Fats: 7,
		},
		dinner: Meal{
			Name:        "Balanced Dinner",
			Ingredients: []string{"Salmon Fillet", "Sweet Potato", "Broccoli"},
			Calories:    343, Protein: 27, Carbs: 31, Fats: 12,
		},
		snack: Meal{
			Name:        "Healthy Snack",
			Ingredients: []string{"Greek Yogurt", "Berries"},
			Calories:    150, Protein: 15, Carbs: 20, Fats: 2,
		},
	},
	{
		breakfast: Meal{
			Name:        "Protein Scramble",
			Ingredients: []string{"Eggs", "Spinach", "Whole Wheat Toast"},
			Calories:    420, Protein: 25, Carbs: 35, Fats: 18,
		},
		lunch: Meal{
			Name:        "Veggie Bowl",
			Ingredients: []string{"Quinoa", "Black Beans", "Avocado", "Bell Peppers"},
			Calories:    485, Protein: 18, Carbs: 65, Fats: 16,
		},
		dinner: Meal{
			Name:        "Lean Protein",
			Ingredients: []string{"Turkey Breast", "Roasted Vegetables", "Wild Rice"},
			Calories:    380, Protein: 35, Carbs: 40, Fats: 8,
		},
		snack: Meal{
			Name:        "Protein Shake",
			Ingredients: []string{"Protein Powder", "Banana", "Almond Milk"},
			Calories:    200, Protein: 25, Carbs: 18, Fats: 4,
		},
	},
	{
		breakfast: Meal{
			Name:        "Healthy Bowl",
			Ingredients: []string{"Greek Yogurt", "Granola", "Mixed Berries"},
			Calories:    390, Protein: 20, Carbs: 45, Fats: 12,
		},
		lunch: Meal{
			Name:        "Mediterranean Wrap",
			Ingredients: []string{"Whole Wheat Tortilla", "Hummus", "Cucumber", "Turkey"},
			Calories:    465, Protein: 28, Carbs: 48, Fats: 18,
		},
		dinner: Meal{
			Name:        "Fish & Veggies",
			Ingredients: []string{"Cod Fillet", "Asparagus", "Quinoa"},
			Calories:    365, Protein: 30, Carbs: 35, Fats: 10,
		},
		snack: Meal{
			Name:        "Nut Mix",
			Ingredients: []string{"Mixed Nuts", "Dried Fruit"},
			Calories:    180, Protein: 6, Carbs: 12, Fats: 14,
		},
	},
}
