// internal/middleware/admin_auth.go
package middleware

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminBasicAuth: Basic auth admin (bcrypt) untuk endpoint debug.
func AdminBasicAuth(user, hash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user == "" || hash == "" {
				http.Error(w, "admin auth not configured", http.StatusForbidden)
				return
			}
			u, p, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				http.Error(w, "auth required", http.StatusUnauthorized)
				return
			}
			if !CheckAdminPassword(user, hash, u, p) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CheckAdminPassword dipakai Basic auth dan handler login.
func CheckAdminPassword(user, hash, gotUser, gotPass string) bool {
	if subtle.ConstantTimeCompare([]byte(gotUser), []byte(user)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(gotPass)) == nil
}
