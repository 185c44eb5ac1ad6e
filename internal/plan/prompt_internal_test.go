package plan

import (
	"strings"
	"testing"
)

func Test_buildPrompt(t *testing.T) {
	t.Parallel()

	details := UserDetails{
		Name:              "Jamie",
		Age:               30,
		Gender:            GenderMale,
		HeightCm:          180,
		WeightKg:          80,
		FitnessGoal:       GoalWeightLoss,
		FitnessLevel:      LevelIntermediate,
		WorkoutLocation:   LocationGym,
		DietaryPreference: DietKeto,
		PlanDays:          14,
		MedicalHistory:    "knee surgery 2024",
	}

	prompt := buildPrompt(details)

	for _, want := range []string{
		"fitness plan for Jamie",
		"Age: 30 years (Adult)",
		"BMI: 24.7",
		"Primary Goal: weight loss",
		"Plan Duration: 14 days",
		"Estimated TDEE: 2549 calories",
		"Target Daily Calories: 2049 calories",
		"Medical Considerations: knee surgery 2024",
		"Generate a 14-day plan",
		"Array of 14 daily workouts",
		"Ensure keto compliance",
		"Respond with ONLY valid JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Optional fields stay out of the prompt when unset.
	details.MedicalHistory = ""
	details.StressLevel = ""
	prompt = buildPrompt(details)
	if strings.Contains(prompt, "Medical Considerations") {
		t.Error("prompt should omit medical considerations when empty")
	}
	if strings.Contains(prompt, "Stress Level") {
		t.Error("prompt should omit stress level when empty")
	}
}
