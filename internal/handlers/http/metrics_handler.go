// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus format sederhana

package http

import (
	"fmt"
	"net/http"

	mcphandlers "mcp-skin/internal/handlers/mcp"
)

func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	s := mcphandlers.Stats()
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")
	counter(w, "skin_profile_evaluations_total", "Pressure profile comparisons served.", s.Evaluations)
	counter(w, "skin_profile_evaluation_errors_total", "Profile requests rejected or failed.", s.EvalErrors)
	counter(w, "skin_profile_cache_hits_total", "Comparisons served from the Redis cache.", s.CacheHits)
	counter(w, "skin_profile_sweeps_total", "Skin sweeps served.", s.Sweeps)
	fmt.Fprintf(w, "# HELP skin_profile_explanations_total Explanations served by source.\n# TYPE skin_profile_explanations_total counter\n")
	fmt.Fprintf(w, "skin_profile_explanations_total{source=\"llm\"} %d\n", s.ExplainLLM)
	fmt.Fprintf(w, "skin_profile_explanations_total{source=\"fallback\"} %d\n", s.ExplainFallback)
}

func counter(w http.ResponseWriter, name, help string, v int64) {
	fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n%s %d\n", name, help, name, name, v)
}
