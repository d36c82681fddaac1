// internal/server/router.go
// Router chi untuk binary mcp-router (tanpa UI/admin)

package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	mcphandlers "mcp-skin/internal/handlers/mcp"
	"mcp-skin/internal/mcp"
	"mcp-skin/internal/middleware"
)

// NewRouter: tool harus sudah diregister ke registry mcp sebelum dipanggil.
func NewRouter(apiKey string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)

	// Healthcheck (biar gampang cek port/path)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"status": "ready", "deps": mcphandlers.ReposStatus()})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(apiKey))
		r.Get("/tools", func(w http.ResponseWriter, r *http.Request) {
			tools, err := mcp.Catalog()
			if err != nil {
				http.Error(w, "catalog error", http.StatusInternalServerError)
				return
			}
			writeJSON(w, map[string]any{"tools": tools})
		})
		r.Post("/route", mcp.RouterHandler)
		r.Post("/tools/{name}", func(w http.ResponseWriter, r *http.Request) {
			mcp.Serve(w, r, chi.URLParam(r, "name"))
		})
	})
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
