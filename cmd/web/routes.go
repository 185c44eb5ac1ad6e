package main

import (
	"net/http"

	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	api := func(next http.Handler) http.Handler {
		return app.recoverPanic(app.logAndTraceRequest(secureHeaders(noCache(next))))
	}

	mux.Handle("POST /api/plans", api(http.HandlerFunc(app.planCreatePOST)))
	mux.Handle("GET /api/plans", api(http.HandlerFunc(app.planListGET)))
	mux.Handle("GET /api/plans/current", api(http.HandlerFunc(app.planCurrentGET)))
	mux.Handle("GET /api/plans/{id}", api(http.HandlerFunc(app.planGET)))
	mux.Handle("DELETE /api/plans/{id}", api(http.HandlerFunc(app.planDELETE)))
	mux.Handle("POST /api/plans/{id}/star", api(http.HandlerFunc(app.planStarPOST)))
	mux.Handle("DELETE /api/plans/{id}/star", api(http.HandlerFunc(app.planStarDELETE)))
	mux.Handle("GET /api/plans/{id}/export", api(http.HandlerFunc(app.planExportGET)))

	mux.Handle("GET /api/theme", api(http.HandlerFunc(app.themeGET)))
	mux.Handle("PUT /api/theme", api(http.HandlerFunc(app.themePUT)))

	mux.Handle("GET /api/images", api(http.HandlerFunc(app.imageGET)))
	mux.Handle("POST /api/speech", api(http.HandlerFunc(app.speechPOST)))
	mux.Handle("GET /api/quote", api(http.HandlerFunc(app.quoteGET)))
	mux.Handle("GET /api/quotes", api(http.HandlerFunc(app.quoteListGET)))

	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	mux.Handle("/", api(http.HandlerFunc(app.notFound)))

	// The SPA frontend is served from a different origin during development.
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: app.corsOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
	return corsMiddleware.Handler(mux)
}
