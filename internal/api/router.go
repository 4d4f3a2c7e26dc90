package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "weekwise/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all the application's
// routes. staticDir is the built frontend bundle; anything outside /api falls
// through to it so client-side routing can take over.
func NewRouter(chatHandler *ChatHandler, boardHandler *BoardHandler, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		// The health check stays timeout-free and cheap so orchestration
		// probes never queue behind model calls.
		r.Get("/health", chatHandler.HandleHealth)

		// Board routes are local database work; a short timeout is enough.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(10 * time.Second))

			r.Get("/board", boardHandler.HandleGetBoard)
			r.Put("/board/title", boardHandler.HandleSetTitle)
			r.Put("/board/days/{day}", boardHandler.HandleEditDay)
			r.Post("/board/days/{day}/toggle", boardHandler.HandleToggleDay)
		})

		// Generation routes hold a connection open for the outbound model
		// call, so they get a generous timeout instead of the default.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(120 * time.Second))

			r.Post("/chat", chatHandler.HandleChat)
			r.Post("/generate-plan", chatHandler.HandleGeneratePlan)
		})
	})

	// All non-API routes serve the single-page application shell.
	r.NotFound(spaHandler(staticDir))

	return r
}

// spaHandler serves files from the static bundle, falling back to index.html
// for extensionless paths so the client router handles them.
func spaHandler(staticDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDir))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
