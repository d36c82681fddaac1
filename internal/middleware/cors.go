// internal/middleware/cors.go
// Middleware CORS untuk front end form profil

package middleware

import "net/http"

const (
	corsMethods = "GET,POST,OPTIONS"
	corsHeaders = "Content-Type,Authorization,X-API-Key,X-Request-ID"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORS(w.Header())
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Preflight dipasang sebagai route OPTIONS catch-all: mux tidak menjalankan
// middleware untuk path yang tidak punya route OPTIONS.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	setCORS(w.Header())
	w.Header().Set("Allow", corsMethods)
	w.WriteHeader(http.StatusNoContent)
}

func setCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", corsMethods)
	h.Set("Access-Control-Allow-Headers", corsHeaders)
	h.Set("Access-Control-Expose-Headers", "X-Request-ID")
	h.Set("Access-Control-Max-Age", "600")
}
