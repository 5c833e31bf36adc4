package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/metadesc-api/internal/api"
	apiMiddleware "github.com/phrazzld/metadesc-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Metrics(app.metrics))
	r.Use(middleware.Recoverer)

	metaHandler := api.NewMetaDescriptionHandler(
		app.contents,
		app.settings,
		app.generator,
		app.providers,
		app.logger,
	)
	contentHandler := api.NewContentHandler(app.contents, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwt)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/meta-description/generate", metaHandler.Generate)
			r.Get("/meta-description/settings", metaHandler.Settings)
			r.Post("/content", contentHandler.Create)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.HandlerFor(app.gatherer, promhttp.HandlerOpts{}))

	return r
}
