package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/missive-api/internal/api"
	apiMiddleware "github.com/phrazzld/missive-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	draftHandler := api.NewDraftHandler(app.drafts, app.logger)
	sessionHandler := api.NewSessionHandler(app.sessions, app.drafts, app.logger)

	r.Route("/api", func(r chi.Router) {
		// One-shot generation
		r.Post("/drafts", draftHandler.CreateDraft)

		// Session-scoped generation with conversation memory
		r.Post("/sessions", sessionHandler.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Delete("/", sessionHandler.DeleteSession)
			r.Post("/drafts", sessionHandler.CreateSessionDraft)
			r.Get("/download", sessionHandler.DownloadDraft)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
