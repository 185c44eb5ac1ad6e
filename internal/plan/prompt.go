package plan

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a certified fitness coach and registered dietitian with 10+ years " +
	"of experience. You specialize in creating personalized, science-based fitness and " +
	"nutrition plans. Always respond with perfectly formatted JSON only."

// buildPrompt renders the user prompt shared by all AI generators. The energy
// math is precomputed here so the model receives concrete calorie targets
// instead of having to derive them.
func buildPrompt(d UserDetails) string {
	goal := goalLabel(d.FitnessGoal)
	diet := strings.ReplaceAll(string(d.DietaryPreference), "_", " ")
	tdee := int(totalDailyExpenditure(d) + 0.5)
	target := targetCalories(d)

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert fitness coach and nutritionist. Generate a comprehensive, science-based fitness plan for %s.\n\n", d.Name)

	fmt.Fprintf(&b, "**PERSONAL PROFILE:**\n")
	fmt.Fprintf(&b, "- Name: %s\n", d.Name)
	fmt.Fprintf(&b, "- Age: %d years (%s)\n", d.Age, ageBracket(d.Age))
	fmt.Fprintf(&b, "- Gender: %s\n", d.Gender)
	fmt.Fprintf(&b, "- Height: %.0f cm, Weight: %.0f kg (BMI: %.1f)\n", d.HeightCm, d.WeightKg, bodyMassIndex(d))
	fmt.Fprintf(&b, "- Current Fitness Level: %s\n", d.FitnessLevel)
	fmt.Fprintf(&b, "- Primary Goal: %s\n", goal)
	fmt.Fprintf(&b, "- Workout Environment: %s\n", d.WorkoutLocation)
	fmt.Fprintf(&b, "- Dietary Preference: %s\n", diet)
	fmt.Fprintf(&b, "- Plan Duration: %d days\n", d.PlanDays)
	fmt.Fprintf(&b, "- Estimated TDEE: %d calories\n", tdee)
	fmt.Fprintf(&b, "- Target Daily Calories: %d calories\n", target)
	if d.MedicalHistory != "" {
		fmt.Fprintf(&b, "- Medical Considerations: %s\n", d.MedicalHistory)
	}
	if d.StressLevel != "" {
		fmt.Fprintf(&b, "- Current Stress Level: %s\n", d.StressLevel)
	}

	fmt.Fprintf(&b, "\n**REQUIREMENTS:**\nGenerate a %d-day plan with:\n\n", d.PlanDays)
	fmt.Fprintf(&b, "1. **workoutPlan** object with:\n")
	fmt.Fprintf(&b, "   - title: Plan name\n")
	fmt.Fprintf(&b, "   - duration: %q\n", fmt.Sprintf("%d days", d.PlanDays))
	fmt.Fprintf(&b, "   - daysPerWeek: Appropriate frequency (3-6 based on level)\n")
	fmt.Fprintf(&b, "   - workouts: Array of %d daily workouts, each with:\n", d.PlanDays)
	fmt.Fprintf(&b, "     * day: \"Day 1\", \"Day 2\", etc.\n")
	fmt.Fprintf(&b, "     * focus: Muscle groups/type (e.g., \"Upper Body\", \"HIIT\", \"Rest\")\n")
	fmt.Fprintf(&b, "     * warmup: Array of 3-4 warm-up activities\n")
	fmt.Fprintf(&b, "     * exercises: Array of 4-8 exercises with name, sets, reps, restTime, instructions, muscleGroups, equipment\n")
	fmt.Fprintf(&b, "     * cooldown: Array of 3-4 cool-down activities\n")
	fmt.Fprintf(&b, "     * duration: Estimated workout time\n\n")
	fmt.Fprintf(&b, "2. **dietPlan** object with:\n")
	fmt.Fprintf(&b, "   - title: Nutrition plan name\n")
	fmt.Fprintf(&b, "   - duration: %q\n", fmt.Sprintf("%d days", d.PlanDays))
	fmt.Fprintf(&b, "   - dailyCalories: %d (adjusted for %s)\n", target, goal)
	fmt.Fprintf(&b, "   - macroSplit: {protein: %%, carbs: %%, fats: %%} optimized for %s\n", goal)
	fmt.Fprintf(&b, "   - meals: Array of %d daily meal plans with:\n", d.PlanDays)
	fmt.Fprintf(&b, "     * day: \"Day 1\", \"Day 2\", etc.\n")
	fmt.Fprintf(&b, "     * totalCalories, totalProtein, totalCarbs, totalFats\n")
	fmt.Fprintf(&b, "     * breakfast, lunch, dinner: Each with name, ingredients[], calories, protein, carbs, fats, instructions\n")
	fmt.Fprintf(&b, "     * snacks: Array of 1-2 snacks with same structure\n\n")
	fmt.Fprintf(&b, "3. **tips**: Array of 6-8 personalized tips considering their %s level, %s goal, and %s preference\n\n",
		d.FitnessLevel, goal, d.WorkoutLocation)
	fmt.Fprintf(&b, "4. **motivation**: Inspiring message addressing %s personally, referencing their %s goal and %d-day commitment\n",
		d.Name, goal, d.PlanDays)

	fmt.Fprintf(&b, "\n**PERSONALIZATION GUIDELINES:**\n")
	fmt.Fprintf(&b, "- %s\n", levelGuideline(d.FitnessLevel))
	fmt.Fprintf(&b, "- %s\n", goalGuideline(d.FitnessGoal))
	fmt.Fprintf(&b, "- %s\n", locationGuideline(d.WorkoutLocation))
	fmt.Fprintf(&b, "- %s\n", dietGuideline(d.DietaryPreference))

	fmt.Fprintf(&b, "\n**CRITICAL:** Respond with ONLY valid JSON. No explanations, no markdown, no additional text. The JSON must be properly formatted and complete.\n\nJSON:")

	return b.String()
}

func ageBracket(age int) string {
	switch {
	case age < 25:
		return "Young adult"
	case age < 40:
		return "Adult"
	case age < 55:
		return "Middle-aged"
	default:
		return "Mature adult"
	}
}

func levelGuideline(level Level) string {
	switch level {
	case LevelIntermediate:
		return "Moderate intensity, compound movements, balanced split"
	case LevelAdvanced:
		return "High intensity, advanced techniques, minimal rest days"
	default:
		return "Focus on form, basic movements, lighter intensity, more rest days"
	}
}

func goalGuideline(goal Goal) string {
	switch goal {
	case GoalWeightLoss:
		return "Higher cardio, moderate strength training, caloric deficit"
	case GoalMuscleGain:
		return "Heavy strength training, progressive overload, caloric surplus"
	case GoalStrength:
		return "Lower rep ranges, compound movements, strength focus"
	default:
		return "Balanced approach with varied training styles"
	}
}

func locationGuideline(location Location) string {
	switch location {
	case LocationGym:
		return "Full range of gym equipment"
	case LocationOutdoor:
		return "Outdoor/functional fitness activities"
	default:
		return "Bodyweight and minimal equipment exercises"
	}
}

func dietGuideline(diet Diet) string {
	if diet == DietNonVegetarian {
		return "Include diverse protein sources"
	}
	return fmt.Sprintf("Ensure %s compliance with adequate protein sources",
		strings.ReplaceAll(string(diet), "_", " "))
}
