package main

import "net/http"

// quoteGET returns a motivational quote. Quote retrieval cannot fail.
func (app *application) quoteGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.quoteService.Get(r.Context()))
}

// quoteListGET returns the curated quote collection, e.g. for clients that
// rotate quotes locally instead of requesting one at a time.
func (app *application) quoteListGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.quoteService.List())
}
