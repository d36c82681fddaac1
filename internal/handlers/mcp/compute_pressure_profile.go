// internal/handlers/mcp/compute_pressure_profile.go
// MCP Tool: compute_pressure_profile - kurva tekanan ideal vs rusak (skin)

package mcp

import (
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"mcp-skin/internal/services"
	"mcp-skin/internal/util"
)

type ProfileResponse struct {
	EvaluationID string                       `json:"evaluation_id"`
	ComputedAt   string                       `json:"computed_at"`
	WellID       string                       `json:"well_id,omitempty"`
	Params       services.ReservoirParameters `json:"params"`
	Cached       bool                         `json:"cached"`
	*services.ProfileComparison
}

func ComputePressureProfileHandler(w http.ResponseWriter, r *http.Request) {
	var in paramsReq
	err := decodeInput(r, &in, func(q url.Values) error {
		var err error
		in, err = parseQuery(q)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	params, skin, err := resolveParams(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	cmp, hit, err := profileCache.GetOrCompute(r.Context(), params, skin)
	evalTotal.Add(1)
	if err != nil {
		evalErrors.Add(1)
		logger.Info("profile.rejected",
			zap.String("request_id", r.Header.Get("X-Request-ID")),
			zap.String("well_id", in.WellID),
			zap.Error(err))
		writeError(w, err)
		return
	}
	if hit {
		cacheHits.Add(1)
	}
	logger.Debug("profile.computed",
		zap.String("request_id", r.Header.Get("X-Request-ID")),
		zap.String("well_id", in.WellID),
		zap.Float64("skin", float64(skin)),
		zap.Bool("cached", hit),
		zap.Duration("took", time.Since(start)))

	writeJSON(w, http.StatusOK, ProfileResponse{
		EvaluationID:      util.NewID(),
		ComputedAt:        clock.Now().Format(time.RFC3339),
		WellID:            in.WellID,
		Params:            params,
		Cached:            hit,
		ProfileComparison: cmp,
	})
}
