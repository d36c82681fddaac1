// internal/handlers/http/debug_repos.go
// Status dependency + katalog tool (admin only)

package http

import (
	"encoding/json"
	"net/http"

	mcphandlers "mcp-skin/internal/handlers/mcp"
	"mcp-skin/internal/mcp"
)

func ReposStatusHandler(w http.ResponseWriter, r *http.Request) {
	tools, err := mcp.Catalog()
	w.Header().Set("Content-Type", "application/json")
	out := map[string]any{
		"repos": mcphandlers.ReposStatus(),
		"tools": tools,
	}
	if err != nil {
		out["catalog_error"] = err.Error()
	}
	_ = json.NewEncoder(w).Encode(out)
}
