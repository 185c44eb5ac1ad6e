package main

import "net/http"

type imageResponse struct {
	Prompt string `json:"prompt"`
	URL    string `json:"url"`
}

// imageGET resolves an illustration URL for the prompt query parameter.
// Resolution cannot fail, so this endpoint always answers 200 for a
// well-formed request.
func (app *application) imageGET(w http.ResponseWriter, r *http.Request) {
	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		app.clientError(w, r, http.StatusBadRequest, "missing prompt query parameter")
		return
	}
	app.writeJSON(w, r, http.StatusOK, imageResponse{
		Prompt: prompt,
		URL:    app.imageFinder.Find(r.Context(), prompt),
	})
}
