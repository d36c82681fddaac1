// internal/handlers/http/admin_handler.go
package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	mcphandlers "mcp-skin/internal/handlers/mcp"
	mysqlrepo "mcp-skin/internal/repositories/mysql"
	"mcp-skin/internal/util"
)

// AdminListWells: daftar semua sumur tersimpan (JWT admin).
func AdminListWells(w http.ResponseWriter, r *http.Request) {
	src := mcphandlers.WellSourceConfigured()
	if src == nil {
		http.Error(w, "well repo not configured", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	f := mysqlrepo.WellFilter{Field: strings.TrimSpace(q.Get("field"))}
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	f.Offset, _ = strconv.Atoi(q.Get("offset"))

	rows, err := src.ListWells(r.Context(), f)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(util.HTTPStatus(err))
		_ = json.NewEncoder(w).Encode(map[string]string{"error": util.CodeOf(err), "message": err.Error()})
		return
	}
	list := make([]mcphandlers.WellParams, 0, len(rows))
	for _, row := range rows {
		list = append(list, mcphandlers.ToWellParams(row))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"wells": list, "count": len(list)})
}
