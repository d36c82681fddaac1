// internal/handlers/mcp/common.go
// Helper bersama: decode input (query / JSON), resolve parameter, tulis JSON

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mcp-skin/internal/services"
	"mcp-skin/internal/util"
)

// paramsReq adalah bentuk input umum tool profil.
type paramsReq struct {
	WellID string `json:"well_id,omitempty"`
	services.ParamsInput
	Skin *float64 `json:"skin,omitempty"`
}

var queryFields = []string{
	"area_acres", "wellbore_radius_ft", "boundary_pressure_psi", "oil_fvf_rb_per_stb",
	"flow_rate_stb_per_day", "permeability_md", "thickness_ft", "viscosity_cp", "skin",
}

// parseQuery membaca parameter dari query string; angka tidak valid -> bad_input.
func parseQuery(q url.Values) (paramsReq, error) {
	var in paramsReq
	in.WellID = strings.TrimSpace(q.Get("well_id"))
	if in.WellID == "" {
		in.WellID = strings.TrimSpace(q.Get("well"))
	}
	dst := map[string]**float64{
		"area_acres":            &in.AreaAcres,
		"wellbore_radius_ft":    &in.WellboreRadiusFt,
		"boundary_pressure_psi": &in.BoundaryPressurePsi,
		"oil_fvf_rb_per_stb":    &in.OilFVF,
		"flow_rate_stb_per_day": &in.FlowRateSTBD,
		"permeability_md":       &in.PermeabilityMD,
		"thickness_ft":          &in.ThicknessFt,
		"viscosity_cp":          &in.ViscosityCP,
		"skin":                  &in.Skin,
	}
	for _, name := range queryFields {
		v := strings.TrimSpace(q.Get(name))
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, fmt.Errorf("%w: %s is not a number: %q", util.BadInput("invalid query"), name, v)
		}
		*dst[name] = &f
	}
	return in, nil
}

// hasQueryInput true kalau query string membawa minimal satu field yang dikenal.
func hasQueryInput(q url.Values) bool {
	if q.Get("well_id") != "" || q.Get("well") != "" {
		return true
	}
	for _, name := range queryFields {
		if q.Get(name) != "" {
			return true
		}
	}
	return false
}

// decodeInput: query string dulu; POST tanpa query -> body JSON.
// dst harus pointer ke struct yang meng-embed paramsReq.
func decodeInput(r *http.Request, dst any, fromQuery func(url.Values) error) error {
	q := r.URL.Query()
	if r.Method == http.MethodPost && !hasQueryInput(q) {
		if r.Body == nil {
			return nil
		}
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %v", util.BadInput("invalid json"), err)
		}
		return nil
	}
	return fromQuery(q)
}

// resolveParams: default form -> parameter sumur tersimpan (jika well_id) -> field eksplisit.
func resolveParams(ctx context.Context, in paramsReq) (services.ReservoirParameters, services.SkinFactor, error) {
	base := services.DefaultReservoirParameters()
	skin := services.DefaultSkin

	if in.WellID != "" {
		if wellSource == nil {
			return base, skin, fmt.Errorf("%w: well_id given but well repository is not configured", util.BadInput("wells unavailable"))
		}
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		w, err := wellSource.GetWell(ctx, in.WellID)
		if err != nil {
			return base, skin, err
		}
		base = w.Params
		if w.Skin.Valid {
			skin = services.SkinFactor(w.Skin.Float64)
		}
	}

	if in.Skin != nil {
		skin = services.SkinFactor(*in.Skin)
	}
	return in.ParamsInput.MergeOnto(base), skin, nil
}

// writeJSON meng-encode dulu sebelum header dikirim; gagal encode -> 500 JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("response.encode_failed", zap.Error(err))
		status = http.StatusInternalServerError
		b, _ = json.Marshal(map[string]any{
			"error":   util.CodeOf(util.Internal("encode")),
			"message": "failed to encode response: " + err.Error(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

// writeError menulis {"error": code, "message": ...} dengan status dari util.HTTPStatus.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, util.HTTPStatus(err), map[string]any{
		"error":   util.CodeOf(err),
		"message": err.Error(),
	})
}
