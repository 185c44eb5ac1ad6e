package plan

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrInvalidDetails wraps every validation failure so callers can map bad
// input to a client error.
var ErrInvalidDetails = errors.New("invalid user details")

// Gender of the user, used for the basal metabolic rate estimate.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Goal is the primary training goal driving calorie targets and workout focus.
type Goal string

const (
	GoalWeightLoss Goal = "weight_loss"
	GoalMuscleGain Goal = "muscle_gain"
	GoalMaintain   Goal = "maintain"
	GoalEndurance  Goal = "endurance"
	GoalStrength   Goal = "strength"
)

// Level is the self-reported fitness level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Location is where the user intends to work out.
type Location string

const (
	LocationHome    Location = "home"
	LocationGym     Location = "gym"
	LocationOutdoor Location = "outdoor"
)

// Diet is the dietary preference of the user.
type Diet string

const (
	DietVegetarian    Diet = "vegetarian"
	DietNonVegetarian Diet = "non_vegetarian"
	DietVegan         Diet = "vegan"
	DietKeto          Diet = "keto"
	DietPaleo         Diet = "paleo"
)

// UserDetails holds one form submission. It is immutable after creation and
// embedded into the FitnessPlan it produced.
type UserDetails struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Gender            Gender   `json:"gender"`
	HeightCm          float64  `json:"height"`
	WeightKg          float64  `json:"weight"`
	FitnessGoal       Goal     `json:"fitnessGoal"`
	FitnessLevel      Level    `json:"fitnessLevel"`
	WorkoutLocation   Location `json:"workoutLocation"`
	DietaryPreference Diet     `json:"dietaryPreference"`
	PlanDays          int      `json:"planDays"`
	MedicalHistory    string   `json:"medicalHistory,omitempty"`
	StressLevel       string   `json:"stressLevel,omitempty"`
	SleepHours        *float64 `json:"sleepHours,omitempty"`
	WaterIntakeLiters *float64 `json:"waterIntake,omitempty"`
}

// Exercise is a single exercise within a workout day.
type Exercise struct {
	Name         string   `json:"name"`
	Sets         int      `json:"sets"`
	Reps         string   `json:"reps"`
	RestTime     string   `json:"restTime"`
	Instructions string   `json:"instructions,omitempty"`
	MuscleGroups []string `json:"muscleGroups"`
	Equipment    string   `json:"equipment,omitempty"`
}

// DayWorkout is one day of the workout plan.
type DayWorkout struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Warmup    []string   `json:"warmup"`
	Exercises []Exercise `json:"exercises"`
	Cooldown  []string   `json:"cooldown"`
	Duration  string     `json:"duration"`
}

// WorkoutPlan is the workout half of a fitness plan.
type WorkoutPlan struct {
	Title       string       `json:"title"`
	Duration    string       `json:"duration"`
	DaysPerWeek int          `json:"daysPerWeek"`
	Workouts    []DayWorkout `json:"workouts"`
}

// Meal is a single meal with its macros.
type Meal struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Calories     int      `json:"calories"`
	Protein      int      `json:"protein"`
	Carbs        int      `json:"carbs"`
	Fats         int      `json:"fats"`
	Instructions string   `json:"instructions,omitempty"`
}

// DayMeals is one day of the diet plan. Breakfast, lunch and dinner are
// required, snacks are optional extras.
type DayMeals struct {
	Day           string `json:"day"`
	TotalCalories int    `json:"totalCalories"`
	TotalProtein  int    `json:"totalProtein"`
	TotalCarbs    int    `json:"totalCarbs"`
	TotalFats     int    `json:"totalFats"`
	Breakfast     Meal   `json:"breakfast"`
	Lunch         Meal   `json:"lunch"`
	Dinner        Meal   `json:"dinner"`
	Snacks        []Meal `json:"snacks"`
}

// MacroSplit is the macro nutrient split in percentages. The percentages are
// expected to sum to 100.
type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// DietPlan is the nutrition half of a fitness plan.
type DietPlan struct {
	Title         string     `json:"title"`
	Duration      string     `json:"duration"`
	DailyCalories int        `json:"dailyCalories"`
	MacroSplit    MacroSplit `json:"macroSplit"`
	Meals         []DayMeals `json:"meals"`
}

// Content is the generated part of a fitness plan, i.e. what a generator
// produces from user details.
type Content struct {
	WorkoutPlan WorkoutPlan `json:"workoutPlan"`
	DietPlan    DietPlan    `json:"dietPlan"`
	Tips        []string    `json:"tips"`
	Motivation  string      `json:"motivation"`
}

// FitnessPlan is the complete workout+diet+tips+motivation bundle for one user
// submission. Plans are never mutated in place; regenerating produces a new
// plan with a new identifier.
type FitnessPlan struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"createdAt"`
	UserDetails UserDetails `json:"userDetails"`
	WorkoutPlan WorkoutPlan `json:"workoutPlan"`
	DietPlan    DietPlan    `json:"dietPlan"`
	Tips        []string    `json:"tips"`
	Motivation  string      `json:"motivation"`
	Starred     bool        `json:"starred"`
}

const (
	minAge      = 16
	maxAge      = 100
	minHeightCm = 120
	maxHeightCm = 250
	minWeightKg = 30
	maxWeightKg = 300
	minPlanDays = 1
	maxPlanDays = 30
)

// Validate checks the user details against the allowed field ranges and enum
// values. It returns an error wrapping ErrInvalidDetails that describes the
// first offending field.
func (d UserDetails) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidDetails)
	}
	if d.Age < minAge || d.Age > maxAge {
		return fmt.Errorf("%w: age must be between %d and %d, got %d", ErrInvalidDetails, minAge, maxAge, d.Age)
	}
	if !slices.Contains([]Gender{GenderMale, GenderFemale, GenderOther}, d.Gender) {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidDetails, d.Gender)
	}
	if d.HeightCm < minHeightCm || d.HeightCm > maxHeightCm {
		return fmt.Errorf("%w: height must be between %d and %d cm, got %.0f",
			ErrInvalidDetails, minHeightCm, maxHeightCm, d.HeightCm)
	}
	if d.WeightKg < minWeightKg || d.WeightKg > maxWeightKg {
		return fmt.Errorf("%w: weight must be between %d and %d kg, got %.0f",
			ErrInvalidDetails, minWeightKg, maxWeightKg, d.WeightKg)
	}
	if !slices.Contains([]Goal{GoalWeightLoss, GoalMuscleGain, GoalMaintain, GoalEndurance, GoalStrength},
		d.FitnessGoal) {
		return fmt.Errorf("%w: unknown fitness goal %q", ErrInvalidDetails, d.FitnessGoal)
	}
	if !slices.Contains([]Level{LevelBeginner, LevelIntermediate, LevelAdvanced}, d.FitnessLevel) {
		return fmt.Errorf("%w: unknown fitness level %q", ErrInvalidDetails, d.FitnessLevel)
	}
	if !slices.Contains([]Location{LocationHome, LocationGym, LocationOutdoor}, d.WorkoutLocation) {
		return fmt.Errorf("%w: unknown workout location %q", ErrInvalidDetails, d.WorkoutLocation)
	}
	if !slices.Contains([]Diet{DietVegetarian, DietNonVegetarian, DietVegan, DietKeto, DietPaleo},
		d.DietaryPreference) {
		return fmt.Errorf("%w: unknown dietary preference %q", ErrInvalidDetails, d.DietaryPreference)
	}
	if d.PlanDays < minPlanDays || d.PlanDays > maxPlanDays {
		return fmt.Errorf("%w: planDays must be between %d and %d, got %d",
			ErrInvalidDetails, minPlanDays, maxPlanDays, d.PlanDays)
	}
	return nil
}

// goalLabel renders the goal enum for humans, e.g. "weight loss".
func goalLabel(g Goal) string {
	return strings.ReplaceAll(string(g), "_", " ")
}
