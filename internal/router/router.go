// Package router sets up all HTTP routes and middleware chains for the
// carouselai API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"carouselai/internal/handlers"
	"carouselai/internal/middleware"
)

// Options configures the parts of the router that depend on deployment.
type Options struct {
	// MediaDir is served under /media/ when media is stored locally.
	// Empty when an object store serves media directly.
	MediaDir string
	// MaxBody caps request bodies. Zero uses middleware.DefaultMaxBody.
	MaxBody int64
}

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API, opts Options) chi.Router {
	if opts.MaxBody == 0 {
		opts.MaxBody = middleware.DefaultMaxBody
	}

	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.MaxBody(opts.MaxBody))

		r.Post("/generate-carousel/", api.GenerateCarousel)
		r.Post("/generate-image/", api.GenerateImage)
		r.Post("/generate-and-apply/", api.GenerateAndApply)
		r.Post("/regenerate-slide/", api.RegenerateSlide)
		r.Post("/update-slide/", api.UpdateSlide)
		r.Post("/generate-all-images/", api.GenerateAllImages)
		r.Get("/project/{id}/slides/", api.ProjectSlides)

		r.Post("/test-openai/", api.TestProvider)
		r.Post("/debug-generate/", api.DebugGenerate)
		r.Get("/ai/providers", api.Providers)
		r.Post("/ai/provider", api.SetProvider)
	})

	if opts.MediaDir != "" {
		fs := http.StripPrefix("/media/", http.FileServer(http.Dir(opts.MediaDir)))
		r.Get("/media/*", fs.ServeHTTP)
	}

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// writeError writes a fixed {"error": msg} body. msg must not need escaping.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
