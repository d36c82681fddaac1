// internal/handlers/mcp/handlers_test.go

package mcp

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mysqlrepo "mcp-skin/internal/repositories/mysql"
	"mcp-skin/internal/services"
	"mcp-skin/internal/util"
)

type fakeWells struct {
	rows map[string]mysqlrepo.WellRow
}

func (f *fakeWells) GetWell(_ context.Context, id string) (*mysqlrepo.WellRow, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: well %q", util.NotFound("well not found"), id)
	}
	return &row, nil
}

func (f *fakeWells) GetWells(_ context.Context, ids []string) ([]mysqlrepo.WellRow, error) {
	var out []mysqlrepo.WellRow
	for _, id := range ids {
		if r, ok := f.rows[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeWells) ListWells(_ context.Context, _ mysqlrepo.WellFilter) ([]mysqlrepo.WellRow, error) {
	out := make([]mysqlrepo.WellRow, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, r)
	}
	return out, nil
}

type fakeLLM struct {
	answer string
	err    error
}

func (f fakeLLM) Complete(context.Context, string, string) (string, error) { return f.answer, f.err }
func (fakeLLM) Model() string { return "fake" }

func setup(t *testing.T) {
	t.Helper()
	p := services.DefaultReservoirParameters()
	p.PermeabilityMD = 50
	SetWellSource(&fakeWells{rows: map[string]mysqlrepo.WellRow{
		"W-01": {WellID: "W-01", WellName: "Alpha-1", FieldName: "Alpha", Params: p, Skin: sql.NullFloat64{Float64: 2, Valid: true}},
	}})
	SetProfileCache(nil)
	SetClock(util.FixedClock{T: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)})
	SetLLMClient(nil)
	t.Cleanup(func() {
		SetWellSource(nil)
		SetLLMClient(nil)
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v; body=%s", err, rec.Body.String())
	}
}

func TestComputeProfileDefaultsViaGET(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	ComputePressureProfileHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var out ProfileResponse
	decode(t, rec, &out)
	if len(out.Ideal) != services.DefaultSamples || len(out.Damaged) != services.DefaultSamples+1 {
		t.Fatalf("unexpected curve sizes %d/%d", len(out.Ideal), len(out.Damaged))
	}
	if math.Abs(out.SkinPressureDropPsi-141.2) > 1e-9 {
		t.Fatalf("expected skin drop 141.2, got %g", out.SkinPressureDropPsi)
	}
	if out.ComputedAt != "2025-01-02T03:04:05Z" {
		t.Fatalf("unexpected computed_at %q", out.ComputedAt)
	}
	if !util.IsID(out.EvaluationID) {
		t.Fatalf("evaluation_id must be uuid, got %q", out.EvaluationID)
	}
}

func TestComputeProfileQueryOverrides(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodGet, "/api/profile?skin=0&flow_rate_stb_per_day=0", nil)
	rec := httptest.NewRecorder()
	ComputePressureProfileHandler(rec, req)

	var out ProfileResponse
	decode(t, rec, &out)
	if out.Params.FlowRateSTBD != 0 || out.Skin != 0 {
		t.Fatalf("query overrides not applied: %+v skin=%g", out.Params, float64(out.Skin))
	}
	for _, p := range out.Damaged {
		if p.PressurePsi != 3000 {
			t.Fatalf("zero rate must give flat 3000 psi, got %g at r=%g", p.PressurePsi, p.RadiusFt)
		}
	}
}

func TestComputeProfilePOSTWithWell(t *testing.T) {
	setup(t)
	body := `{"well_id":"W-01","thickness_ft":20}`
	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ComputePressureProfileHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var out ProfileResponse
	decode(t, rec, &out)
	if out.Params.PermeabilityMD != 50 || out.Params.ThicknessFt != 20 {
		t.Fatalf("well params + override not merged: %+v", out.Params)
	}
	if out.Skin != 2 {
		t.Fatalf("stored well skin must be used, got %g", float64(out.Skin))
	}
}

func TestComputeProfileRejectsInvalid(t *testing.T) {
	setup(t)
	cases := map[string]string{
		"k=0":      `{"permeability_md":0}`,
		"rw=5":     `{"wellbore_radius_ft":5}`,
		"bad json": `{"permeability_md":`,
	}
	for name, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ComputePressureProfileHandler(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", name, rec.Code, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile?skin=abc", nil)
	rec := httptest.NewRecorder()
	ComputePressureProfileHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric query must give 400, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/profile?well_id=NOPE", nil)
	rec = httptest.NewRecorder()
	ComputePressureProfileHandler(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown well must give 404, got %d", rec.Code)
	}
}

func TestSkinSweep(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodGet, "/api/profile/sweep?skins=0.5,1,5", nil)
	rec := httptest.NewRecorder()
	ComputeSkinSweepHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var out SweepResponse
	decode(t, rec, &out)
	if len(out.Items) != 3 {
		t.Fatalf("expected 3 sweep items, got %d", len(out.Items))
	}
	last := len(out.Items[0].Damaged) - 1
	if out.Items[0].Damaged[last].PressurePsi != out.Items[2].Damaged[last].PressurePsi {
		t.Fatalf("reconnection point must not depend on skin")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/profile/sweep", bytes.NewReader([]byte(`{}`)))
	rec = httptest.NewRecorder()
	ComputeSkinSweepHandler(rec, req)
	decode(t, rec, &out)
	if len(out.Items) != len(defaultSweepSkins) {
		t.Fatalf("expected default sweep of %d, got %d", len(defaultSweepSkins), len(out.Items))
	}
}

func TestExplainFallbackAndLLM(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodPost, "/api/profile/explain", strings.NewReader(`{"skin":1}`))
	rec := httptest.NewRecorder()
	ExplainSkinEffectHandler(rec, req)
	var out ExplainResponse
	decode(t, rec, &out)
	if out.Source != "fallback" || !strings.Contains(out.Answer, "formation damage") {
		t.Fatalf("unexpected fallback answer: %+v", out)
	}

	SetLLMClient(fakeLLM{answer: "Skin adds 141 psi of drawdown."})
	req = httptest.NewRequest(http.MethodPost, "/api/profile/explain", strings.NewReader(`{"skin":1}`))
	rec = httptest.NewRecorder()
	ExplainSkinEffectHandler(rec, req)
	decode(t, rec, &out)
	if out.Source != "llm" || out.Answer != "Skin adds 141 psi of drawdown." {
		t.Fatalf("unexpected llm answer: %+v", out)
	}

	SetLLMClient(fakeLLM{err: errors.New("timeout")})
	req = httptest.NewRequest(http.MethodPost, "/api/profile/explain", strings.NewReader(`{"skin":-1}`))
	rec = httptest.NewRecorder()
	ExplainSkinEffectHandler(rec, req)
	decode(t, rec, &out)
	if out.Source != "fallback" || !strings.Contains(out.Answer, "stimulation") {
		t.Fatalf("llm error must fall back: %+v", out)
	}
}

func TestGetWellParameters(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodGet, "/api/wells?well_id=W-01", nil)
	rec := httptest.NewRecorder()
	GetWellParametersHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var one WellParams
	decode(t, rec, &one)
	if one.WellName != "Alpha-1" || one.Skin == nil || *one.Skin != 2 {
		t.Fatalf("unexpected well: %+v", one)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/wells", nil)
	rec = httptest.NewRecorder()
	GetWellParametersHandler(rec, req)
	var list struct {
		Wells []WellParams `json:"wells"`
	}
	decode(t, rec, &list)
	if len(list.Wells) != 1 {
		t.Fatalf("expected 1 well, got %d", len(list.Wells))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/wells?well_ids=W-01,,W-01,NOPE", nil)
	rec = httptest.NewRecorder()
	GetWellParametersHandler(rec, req)
	decode(t, rec, &list)
	if len(list.Wells) != 1 || list.Wells[0].WellID != "W-01" {
		t.Fatalf("batch lookup must return only known wells once: %+v", list.Wells)
	}

	SetWellSource(nil)
	rec = httptest.NewRecorder()
	GetWellParametersHandler(rec, httptest.NewRequest(http.MethodGet, "/api/wells", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without repo, got %d", rec.Code)
	}
}

func TestFormDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	GetFormDefaultsHandler(rec, httptest.NewRequest(http.MethodGet, "/api/profile/defaults", nil))
	var out struct {
		Params services.ReservoirParameters `json:"params"`
		Limits []services.FieldLimit        `json:"limits"`
	}
	decode(t, rec, &out)
	if out.Params.AreaAcres != 100 || len(out.Limits) != 9 {
		t.Fatalf("unexpected defaults: %+v", out)
	}
}

func TestSkinSweepStream(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodGet, "/api/profile/sweep/stream?skins=1,2", nil)
	rec := httptest.NewRecorder()
	StreamSkinSweepHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if strings.Count(body, "event: meta\n") != 1 || strings.Count(body, "event: item\n") != 2 {
		t.Fatalf("unexpected events:\n%s", body)
	}
	if !strings.HasSuffix(body, "event: done\ndata: [DONE]\n\n") {
		t.Fatalf("stream must end with done event:\n%s", body)
	}

	// error sebelum stream dimulai tetap JSON 400
	rec = httptest.NewRecorder()
	StreamSkinSweepHandler(rec, httptest.NewRequest(http.MethodGet, "/api/profile/sweep/stream?skins=x", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestComputeProfileOverflowIsBadInput(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodGet, "/api/profile?flow_rate_stb_per_day=1e300&viscosity_cp=1e300", nil)
	rec := httptest.NewRecorder()
	ComputePressureProfileHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%q", rec.Code, rec.Body.String())
	}
	var out struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	decode(t, rec, &out)
	if out.Error != "bad_input" || !strings.Contains(out.Message, "not finite") {
		t.Fatalf("unexpected error body: %+v", out)
	}
}

func TestWriteJSONEncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"p": math.Inf(-1)})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 || !strings.Contains(rec.Body.String(), "failed to encode") {
		t.Fatalf("error body must not be empty: %q", rec.Body.String())
	}
}
