package main

import (
	"fmt"
	"net/http"

	"github.com/fitforge/fitforge/internal/errors"
	"github.com/fitforge/fitforge/internal/export"
	"github.com/fitforge/fitforge/internal/plan"
)

// planExportGET renders a stored plan as a document. The format query
// parameter selects markdown (default) or html.
func (app *application) planExportGET(w http.ResponseWriter, r *http.Request) {
	fitnessPlan, err := app.planService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", "fitness-plan-"+fitnessPlan.ID+".md"))
		_, _ = w.Write([]byte(export.Markdown(fitnessPlan)))
	case "html":
		page, err := export.HTML(fitnessPlan)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	default:
		app.clientError(w, r, http.StatusBadRequest, "unknown export format "+format)
	}
}
