// internal/handlers/mcp/compute_skin_sweep_stream.go
// Versi SSE dari compute_skin_sweep: satu event per nilai skin.

package mcp

import (
	"net/http"

	"go.uber.org/zap"

	"mcp-skin/internal/services"
	"mcp-skin/internal/util/sse"
)

type sweepMeta struct {
	WellID           string                       `json:"well_id,omitempty"`
	Params           services.ReservoirParameters `json:"params"`
	DrainageRadiusFt float64                      `json:"drainage_radius_ft"`
	Ideal            services.PressureCurve       `json:"ideal"`
	Count            int                          `json:"count"`
}

// StreamSkinSweepHandler: event "meta", lalu "item" per skin, ditutup "done".
// Validasi dilakukan sebelum header SSE dikirim supaya error tetap JSON biasa.
func StreamSkinSweepHandler(w http.ResponseWriter, r *http.Request) {
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

	flusher := sse.Prepare(w)
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	if err := sse.WriteEvent(w, flusher, "meta", sweepMeta{
		WellID:           in.WellID,
		Params:           params,
		DrainageRadiusFt: params.DrainageRadius(),
		Ideal:            ideal,
		Count:            len(items),
	}); err != nil {
		logger.Warn("sweep.stream_write", zap.Error(err))
		return
	}
	for i := range items {
		if ctx.Err() != nil {
			logger.Info("sweep.stream_cancelled", zap.Int("sent", i))
			return
		}
		if err := sse.WriteEvent(w, flusher, "item", items[i]); err != nil {
			logger.Warn("sweep.stream_write", zap.Error(err))
			return
		}
	}
	_ = sse.WriteEvent(w, flusher, "done", "[DONE]")
}
