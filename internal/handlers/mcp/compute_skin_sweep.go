// internal/handlers/mcp/compute_skin_sweep.go
// MCP Tool: compute_skin_sweep - profil rusak untuk beberapa nilai skin

package mcp

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mcp-skin/internal/services"
	"mcp-skin/internal/util"
)

type sweepReq struct {
	paramsReq
	Skins []float64 `json:"skins"`
}

type SweepResponse struct {
	WellID           string                       `json:"well_id,omitempty"`
	Params           services.ReservoirParameters `json:"params"`
	DrainageRadiusFt float64                      `json:"drainage_radius_ft"`
	Ideal            services.PressureCurve       `json:"ideal"`
	Items            []services.SweepItem         `json:"items"`
}

// defaultSweepSkins mengikuti rentang slider form (0.5 .. 5.0).
var defaultSweepSkins = []float64{0.5, 1, 2, 3, 4, 5}

// readSweep mendekode request sweep (query/JSON) + resolve parameter sumur.
func readSweep(r *http.Request) (sweepReq, services.ReservoirParameters, []services.SkinFactor, error) {
	var in sweepReq
	err := decodeInput(r, &in, func(q url.Values) error {
		base, err := parseQuery(q)
		if err != nil {
			return err
		}
		in.paramsReq = base
		// skins=0.5,1,2
		if raw := strings.TrimSpace(q.Get("skins")); raw != "" {
			for _, s := range strings.Split(raw, ",") {
				f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil {
					return fmt.Errorf("%w: skins contains %q", util.BadInput("invalid query"), s)
				}
				in.Skins = append(in.Skins, f)
			}
		}
		return nil
	})
	if err != nil {
		return in, services.ReservoirParameters{}, nil, err
	}
	if len(in.Skins) == 0 {
		in.Skins = defaultSweepSkins
	}

	params, _, err := resolveParams(r.Context(), in.paramsReq)
	if err != nil {
		return in, params, nil, err
	}

	skins := make([]services.SkinFactor, len(in.Skins))
	for i, s := range in.Skins {
		skins[i] = services.SkinFactor(s)
	}
	return in, params, skins, nil
}

func ComputeSkinSweepHandler(w http.ResponseWriter, r *http.Request) {
	in, params, skins, err := readSweep(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sweepTotal.Add(1)
	items, err := services.SkinSweep(params, skins)
	if err != nil {
		writeError(w, err)
		return
	}
	ideal, err := services.ComputeIdealProfile(params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SweepResponse{
		WellID:           in.WellID,
		Params:           params,
		DrainageRadiusFt: params.DrainageRadius(),
		Ideal:            ideal,
		Items:            items,
	})
}
