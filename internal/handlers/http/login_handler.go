// internal/handlers/http/login_handler.go
package http

import (
	"encoding/json"
	"net/http"

	"mcp-skin/internal/middleware"
	"mcp-skin/internal/util"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // epoch seconds
	User      string `json:"user"`
	Role      string `json:"role"`
}

// AdminCreds: kredensial admin dari config (ADMIN_*).
type AdminCreds struct {
	User      string
	PassHash  string
	JWTSecret string
}

func (c AdminCreds) configured() bool {
	return c.User != "" && c.PassHash != "" && c.JWTSecret != ""
}

// LoginHandler menukar username/password (bcrypt) dengan JWT admin.
func LoginHandler(creds AdminCreds, clock util.Clock) http.HandlerFunc {
	if clock == nil {
		clock = util.RealClock{}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in loginReq
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if !creds.configured() {
			http.Error(w, "admin not configured", http.StatusForbidden)
			return
		}
		if !middleware.CheckAdminPassword(creds.User, creds.PassHash, in.Username, in.Password) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, exp, err := middleware.GenerateAdminToken(creds.JWTSecret, creds.User, clock.Now())
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loginResp{
			Token:     token,
			ExpiresAt: exp,
			User:      creds.User,
			Role:      "admin",
		})
	}
}
