package main

import (
	"context"
	"net/http"

	"github.com/fitforge/fitforge/internal/errors"
	"github.com/fitforge/fitforge/internal/image"
	"github.com/fitforge/fitforge/internal/plan"
)

// planCreatePOST generates a plan from submitted user details, saves it and
// marks it current. Generation itself cannot fail thanks to the template
// fallback; only invalid input or storage trouble produce errors.
func (app *application) planCreatePOST(w http.ResponseWriter, r *http.Request) {
	var details plan.UserDetails
	if !app.readJSON(w, r, &details) {
		return
	}

	fitnessPlan, err := app.planService.Generate(r.Context(), details)
	if err != nil {
		if errors.Is(err, plan.ErrInvalidDetails) {
			app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		app.serverError(w, r, err)
		return
	}

	// Warm the image cache in the background: the client requests an
	// illustration per exercise and meal right after rendering the plan.
	go image.Prefetch(context.WithoutCancel(r.Context()), app.imageFinder, planImagePrompts(fitnessPlan))

	app.writeJSON(w, r, http.StatusCreated, fitnessPlan)
}

// planImagePrompts lists the image prompts a client will request while
// rendering a plan. Day templates repeat exercises and meals, so the list is
// deduplicated.
func planImagePrompts(fitnessPlan plan.FitnessPlan) []string {
	seen := make(map[string]struct{})
	var prompts []string
	add := func(prompt string) {
		if _, ok := seen[prompt]; ok {
			return
		}
		seen[prompt] = struct{}{}
		prompts = append(prompts, prompt)
	}

	for _, day := range fitnessPlan.WorkoutPlan.Workouts {
		for _, exercise := range day.Exercises {
			add(image.ExercisePrompt(exercise.Name))
		}
	}
	for _, day := range fitnessPlan.DietPlan.Meals {
		add(image.MealPrompt(day.Breakfast.Name))
		add(image.MealPrompt(day.Lunch.Name))
		add(image.MealPrompt(day.Dinner.Name))
		for _, snack := range day.Snacks {
			add(image.MealPrompt(snack.Name))
		}
	}
	return prompts
}

func (app *application) planListGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.planService.List(r.Context()))
}

func (app *application) planCurrentGET(w http.ResponseWriter, r *http.Request) {
	fitnessPlan, ok := app.planService.Current(r.Context())
	if !ok {
		app.notFound(w, r)
		return
	}
	app.writeJSON(w, r, http.StatusOK, fitnessPlan)
}

func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	fitnessPlan, err := app.planService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, fitnessPlan)
}

func (app *application) planDELETE(w http.ResponseWriter, r *http.Request) {
	if err := app.planService.Delete(r.Context(), r.PathValue("id")); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) planStarPOST(w http.ResponseWriter, r *http.Request) {
	app.setStarred(w, r, true)
}

func (app *application) planStarDELETE(w http.ResponseWriter, r *http.Request) {
	app.setStarred(w, r, false)
}

func (app *application) setStarred(w http.ResponseWriter, r *http.Request, starred bool) {
	err := app.planService.SetStarred(r.Context(), r.PathValue("id"), starred)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
