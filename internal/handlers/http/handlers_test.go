// internal/handlers/http/handlers_test.go

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	mcphandlers "mcp-skin/internal/handlers/mcp"
	"mcp-skin/internal/util"
)

func TestHealthAndReady(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health: %d %s", rec.Code, rec.Body.String())
	}

	mcphandlers.SetLLMClient(nil)
	rec = httptest.NewRecorder()
	ReadyHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	var out struct {
		Status string          `json:"status"`
		Deps   map[string]bool `json:"deps"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Status != "ready" || out.Deps["llm"] {
		t.Fatalf("unexpected readiness: %+v", out)
	}
}

func TestMetricsExposesCounters(t *testing.T) {
	rec := httptest.NewRecorder()
	MetricsHandler(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{"app_up 1", "skin_profile_evaluations_total", `source="fallback"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %q:\n%s", want, body)
		}
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	creds := AdminCreds{User: "admin", PassHash: string(hash), JWTSecret: "k"}
	now := time.Now().UTC()
	h := LoginHandler(creds, util.FixedClock{T: now})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"rahasia"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var out loginResp
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Token == "" || out.ExpiresAt != now.Add(24*time.Hour).Unix() {
		t.Fatalf("unexpected login response: %+v", out)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"salah"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	LoginHandler(AdminCreds{}, nil)(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`)))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when admin is not configured, got %d", rec.Code)
	}
}

func TestAdminListWellsWithoutRepo(t *testing.T) {
	mcphandlers.SetWellSource(nil)
	rec := httptest.NewRecorder()
	AdminListWells(rec, httptest.NewRequest(http.MethodGet, "/admin/wells", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
