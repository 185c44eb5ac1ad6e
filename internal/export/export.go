// Package export renders fitness plans as Markdown and standalone HTML
// documents for sharing and printing.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fitforge/fitforge/internal/plan"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown renders the plan as a GitHub-flavored Markdown document.
func Markdown(fitnessPlan plan.FitnessPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", fitnessPlan.WorkoutPlan.Title)
	fmt.Fprintf(&b, "Created %s for %s.\n\n",
		fitnessPlan.CreatedAt.Format("January 2, 2006"), fitnessPlan.UserDetails.Name)

	fmt.Fprintf(&b, "## Workout Plan\n\n")
	fmt.Fprintf(&b, "%s, %d sessions per week.\n\n",
		fitnessPlan.WorkoutPlan.Duration, fitnessPlan.WorkoutPlan.DaysPerWeek)
	for _, day := range fitnessPlan.WorkoutPlan.Workouts {
		fmt.Fprintf(&b, "### %s: %s (%s)\n\n", day.Day, day.Focus, day.Duration)
		if len(day.Warmup) > 0 {
			fmt.Fprintf(&b, "Warm-up: %s.\n\n", strings.Join(day.Warmup, ", "))
		}
		fmt.Fprintf(&b, "| Exercise | Sets | Reps | Rest |\n")
		fmt.Fprintf(&b, "| --- | --- | --- | --- |\n")
		for _, exercise := range day.Exercises {
			fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
				exercise.Name, exercise.Sets, exercise.Reps, exercise.RestTime)
		}
		b.WriteString("\n")
		if len(day.Cooldown) > 0 {
			fmt.Fprintf(&b, "Cool-down: %s.\n\n", strings.Join(day.Cooldown, ", "))
		}
	}

	fmt.Fprintf(&b, "## Diet Plan\n\n")
	fmt.Fprintf(&b, "%s, %d kcal per day. Macros: %d%% protein, %d%% carbs, %d%% fats.\n\n",
		fitnessPlan.DietPlan.Duration,
		fitnessPlan.DietPlan.DailyCalories,
		fitnessPlan.DietPlan.MacroSplit.Protein,
		fitnessPlan.DietPlan.MacroSplit.Carbs,
		fitnessPlan.DietPlan.MacroSplit.Fats)
	for _, day := range fitnessPlan.DietPlan.Meals {
		fmt.Fprintf(&b, "### %s (%d kcal)\n\n", day.Day, day.TotalCalories)
		writeMeal(&b, "Breakfast", day.Breakfast)
		writeMeal(&b, "Lunch", day.Lunch)
		writeMeal(&b, "Dinner", day.Dinner)
		for _, snack := range day.Snacks {
			writeMeal(&b, "Snack", snack)
		}
		b.WriteString("\n")
	}

	if len(fitnessPlan.Tips) > 0 {
		fmt.Fprintf(&b, "## Tips\n\n")
		for _, tip := range fitnessPlan.Tips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
		b.WriteString("\n")
	}

	if fitnessPlan.Motivation != "" {
		fmt.Fprintf(&b, "> %s\n", fitnessPlan.Motivation)
	}

	return b.String()
}

func writeMeal(b *strings.Builder, label string, meal plan.Meal) {
	fmt.Fprintf(b, "- **%s**: %s (%s) - %d kcal, %dg protein, %dg carbs, %dg fats\n",
		label, meal.Name, strings.Join(meal.Ingredients, ", "),
		meal.Calories, meal.Protein, meal.Carbs, meal.Fats)
}

// HTML renders the plan as a standalone HTML page.
func HTML(fitnessPlan plan.FitnessPlan) ([]byte, error) {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(fitnessPlan)), &body); err != nil {
		return nil, fmt.Errorf("render plan markdown: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
table { border-collapse: collapse; width: 100%%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
blockquote { border-left: 4px solid #888; margin-left: 0; padding-left: 1rem; font-style: italic; }
</style>
</head>
<body>
`, htmlEscape(fitnessPlan.WorkoutPlan.Title))
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func htmlEscape(s string) string {
	return htmlEscaper.Replace(s)
}
