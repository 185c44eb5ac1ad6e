package main

import "net/http"

type themeResponse struct {
	Theme string `json:"theme"`
}

func (app *application) themeGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, themeResponse{Theme: app.planService.Theme(r.Context())})
}

func (app *application) themePUT(w http.ResponseWriter, r *http.Request) {
	var req themeResponse
	if !app.readJSON(w, r, &req) {
		return
	}
	if err := app.planService.SetTheme(r.Context(), req.Theme); err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	app.writeJSON(w, r, http.StatusOK, req)
}
