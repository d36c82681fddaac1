// internal/middleware/request_id.go
// Middleware untuk inject X-Request-ID (nilai dari client dipakai kalau wajar)

package middleware

import (
	"net/http"

	"mcp-skin/internal/util"
)

const maxRequestIDLen = 128

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if !usableRequestID(reqID) {
			reqID = util.NewID()
			r.Header.Set("X-Request-ID", reqID)
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}

// usableRequestID: tidak kosong, <= 128 byte, ASCII printable tanpa spasi
// (nilai ini masuk ke log & header response).
func usableRequestID(s string) bool {
	if s == "" || len(s) > maxRequestIDLen {
		return false
	}
	if util.IsID(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
