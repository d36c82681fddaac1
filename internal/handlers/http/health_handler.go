// internal/handlers/http/health_handler.go
// Handler sederhana untuk health check & readiness

package http

import (
	"encoding/json"
	"net/http"

	mcphandlers "mcp-skin/internal/handlers/mcp"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status": "ok",
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// ReadyHandler: model profil tidak butuh dependency, jadi selalu siap;
// status dependency opsional ikut dilaporkan.
func ReadyHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status": "ready",
		"deps":   mcphandlers.ReposStatus(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
