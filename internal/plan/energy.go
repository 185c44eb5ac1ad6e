package plan

import "math"

// basalMetabolicRate estimates resting calorie burn with the Harris-Benedict
// equation. The female coefficients serve as the neutral choice when gender is
// neither male nor female.
func basalMetabolicRate(d UserDetails) float64 {
	if d.Gender == GenderMale {
		return 88.362 + 13.397*d.WeightKg + 4.799*d.HeightCm - 5.677*float64(d.Age)
	}
	return 447.593 + 9.247*d.WeightKg + 3.098*d.HeightCm - 4.330*float64(d.Age)
}

// activityMultiplier scales the basal rate by training experience.
func activityMultiplier(level Level) float64 {
	switch level {
	case LevelIntermediate:
		return 1.375
	case LevelAdvanced:
		return 1.55
	default:
		return 1.2
	}
}

// totalDailyExpenditure is the maintenance calorie estimate before any goal
// adjustment.
func totalDailyExpenditure(d UserDetails) float64 {
	return basalMetabolicRate(d) * activityMultiplier(d.FitnessLevel)
}

// targetCalories adjusts maintenance calories for the training goal: a deficit
// for weight loss, a surplus for muscle gain, maintenance otherwise.
func targetCalories(d UserDetails) int {
	tdee := totalDailyExpenditure(d)
	switch d.FitnessGoal {
	case GoalWeightLoss:
		tdee -= 500
	case GoalMuscleGain:
		tdee += 300
	}
	return int(math.Round(tdee))
}

// bodyMassIndex in kg/m².
func bodyMassIndex(d UserDetails) float64 {
	heightM := d.HeightCm / 100
	return d.WeightKg / (heightM * heightM)
}

// macroSplitFor mirrors the split used by the built-in templates: more protein
// for muscle gain, fewer carbs and more fats for weight loss.
func macroSplitFor(goal Goal) MacroSplit {
	split := MacroSplit{Protein: 25, Carbs: 45, Fats: 30}
	if goal == GoalMuscleGain {
		split.Protein = 35
	}
	if goal == GoalWeightLoss {
		split.Carbs = 35
		split.Fats = 40
	}
	return split
}
