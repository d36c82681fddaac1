// internal/handlers/mcp/get_form_defaults.go
// MCP Tool: get_form_defaults - default & batas input untuk front end

package mcp

import (
	"net/http"

	"mcp-skin/internal/services"
)

func GetFormDefaultsHandler(w http.ResponseWriter, r *http.Request) {
	d := services.DefaultReservoirParameters()
	writeJSON(w, http.StatusOK, map[string]any{
		"params":             d,
		"skin":               services.DefaultSkin,
		"limits":             services.FormLimits(),
		"zones":              services.Zones(),
		"drainage_radius_ft": d.DrainageRadius(),
		"samples":            services.DefaultSamples,
	})
}
