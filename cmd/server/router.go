package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/flashforge-api/internal/api"
	apiMiddleware "github.com/phrazzld/flashforge-api/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter creates the router with middleware and all routes, wrapped in
// the CORS handler.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)

	flashcardHandler := api.NewFlashcardHandler(
		app.flashcardService,
		app.config.Server.MaxUploadBytes,
		app.logger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", flashcardHandler.Health)
		r.Post("/generate-flashcards", flashcardHandler.GenerateFlashcards)
		r.Post("/export-flashcards", flashcardHandler.ExportFlashcards)
		r.Put("/update-flashcard", flashcardHandler.UpdateFlashcard)
	})

	return cors.New(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin", "X-Requested-With"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         86400,
	}).Handler(r)
}
