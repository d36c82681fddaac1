// internal/app/routes.go
// Routing HTTP utama (gorilla/mux): publik, /api, /debug, /admin

package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"mcp-skin/internal/config"
	hh "mcp-skin/internal/handlers/http"
	mcphandlers "mcp-skin/internal/handlers/mcp"
	"mcp-skin/internal/mcp"
	"mcp-skin/internal/middleware"
)

// RegisterRoutes menambahkan semua route HTTP; /api mirror root.
func RegisterRoutes(r *mux.Router, cfg *config.Config) {
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.ReadyHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)

	login := hh.LoginHandler(hh.AdminCreds{
		User:      cfg.Admin.User,
		PassHash:  cfg.Admin.PassHash,
		JWTSecret: cfg.Admin.JWTSecret,
	}, nil)
	r.HandleFunc("/login", login).Methods(http.MethodPost, http.MethodOptions)

	debug := r.PathPrefix("/debug").Subrouter()
	debug.Use(middleware.AdminBasicAuth(cfg.Admin.User, cfg.Admin.PassHash))
	debug.HandleFunc("/repos", hh.ReposStatusHandler).Methods(http.MethodGet)

	mcpRoute := middleware.APIKey(cfg.APIKey)(http.HandlerFunc(mcp.RouterHandler))
	r.Handle("/mcp/route", mcpRoute).Methods(http.MethodPost, http.MethodOptions)

	// --- /api prefix (supaya FE bisa pakai /api/...) ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.APIKey(cfg.APIKey))
	api.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/readyz", hh.ReadyHandler).Methods(http.MethodGet)
	api.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)
	api.HandleFunc("/login", login).Methods(http.MethodPost, http.MethodOptions)

	// Domain endpoints (MCP tools exposed via HTTP)
	api.HandleFunc("/profile/defaults", mcphandlers.GetFormDefaultsHandler).
		Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/profile", mcphandlers.ComputePressureProfileHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/profile/sweep", mcphandlers.ComputeSkinSweepHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/profile/sweep/stream", mcphandlers.StreamSkinSweepHandler).
		Methods(http.MethodGet, http.MethodPost)

	api.HandleFunc("/profile/explain", mcphandlers.ExplainSkinEffectHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/wells", mcphandlers.GetWellParametersHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/wells/{id}", mcphandlers.GetWellParametersHandler).
		Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/mcp/route", http.HandlerFunc(mcp.RouterHandler)).
		Methods(http.MethodPost, http.MethodOptions)

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(middleware.Preflight)

	// Admin (JWT protected)
	adminJWT := r.PathPrefix("/admin").Subrouter()
	adminJWT.Use(middleware.AdminJWTAuth(cfg.Admin.JWTSecret))
	adminJWT.Use(middleware.RequireRole("admin"))
	adminJWT.HandleFunc("/wells", hh.AdminListWells).Methods(http.MethodGet)
}
