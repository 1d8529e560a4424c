// internal/api/router.go
package api

import (
	"io/fs"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/winexplorer/backend/internal/metrics"
)

// RegisterRoutes mounts the explorer API on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/health", h.health)

	mux.HandleFunc("GET /api/folders/{folderID}", h.getFolder)
	mux.HandleFunc("GET /api/tree", h.getTree)
	mux.HandleFunc("GET /api/breadcrumbs/{itemID}", h.getBreadcrumbs)
	mux.HandleFunc("GET /api/search/{query}", h.search)
	mux.HandleFunc("GET /api/search/{$}", h.search)

	// Anything else under /api is an unknown endpoint, never the web client.
	// Every API route is read-only, so other methods get 405 here.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
		respondError(w, http.StatusNotFound, "API endpoint not found")
	})
}

// NewRouter builds the complete server handler: API routes, metrics, Swagger
// UI and the web client fallback, wrapped in Recover → Logging → Metrics → CORS.
func NewRouter(h *Handler, static fs.FS, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	RegisterRoutes(mux, h)
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("/", SPA(static))

	return Chain(mux,
		Recover(h.logger),
		Logging(h.logger),
		metrics.Middleware,
		CORS(allowedOrigins),
	)
}
