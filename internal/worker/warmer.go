// internal/worker/warmer.go
// Pemanas cache: hitung ulang profil semua sumur tersimpan ke Redis

package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mcp-skin/internal/cache"
	mysqlrepo "mcp-skin/internal/repositories/mysql"
	"mcp-skin/internal/services"
)

// WellLister dipenuhi *mysqlrepo.WellRepo.
type WellLister interface {
	ListWells(ctx context.Context, f mysqlrepo.WellFilter) ([]mysqlrepo.WellRow, error)
}

type Warmer struct {
	Wells    WellLister
	Cache    *cache.ProfileCache
	Log      *zap.Logger
	PageSize int
}

// Result ringkasan satu putaran.
type Result struct {
	Wells   int
	Hits    int
	Invalid int
}

// WarmOnce menelusuri semua sumur per halaman; sumur dengan parameter
// tidak valid dilewati dan dihitung.
func (w *Warmer) WarmOnce(ctx context.Context) (Result, error) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	// page harus sama dengan limit efektif repo; kalau lebih besar,
	// halaman penuh terlihat "pendek" dan loop berhenti terlalu awal.
	page := w.PageSize
	switch {
	case page <= 0:
		page = mysqlrepo.DefaultListLimit
	case page > mysqlrepo.MaxListLimit:
		page = mysqlrepo.MaxListLimit
	}

	var res Result
	for offset := 0; ; offset += page {
		rows, err := w.Wells.ListWells(ctx, mysqlrepo.WellFilter{Limit: page, Offset: offset})
		if err != nil {
			return res, err
		}
		for _, row := range rows {
			skin := services.SkinFactor(services.DefaultSkin)
			if row.Skin.Valid {
				skin = services.SkinFactor(row.Skin.Float64)
			}
			_, hit, err := w.Cache.GetOrCompute(ctx, row.Params, skin)
			if err != nil {
				res.Invalid++
				log.Warn("warm.skip", zap.String("well_id", row.WellID), zap.Error(err))
				continue
			}
			res.Wells++
			if hit {
				res.Hits++
			}
		}
		if len(rows) < page {
			return res, nil
		}
	}
}

// Schedule mendaftarkan WarmOnce ke cron dengan spec (mis. "@every 5m")
// lalu memblok sampai ctx selesai. Putaran pertama langsung dijalankan.
func (w *Warmer) Schedule(ctx context.Context, spec string) error {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(spec, func() { w.runOnce(ctx, log) }); err != nil {
		return fmt.Errorf("cron spec %q: %w", spec, err)
	}
	w.runOnce(ctx, log)
	c.Start()
	log.Info("cron started", zap.String("spec", spec))
	<-ctx.Done()
	<-c.Stop().Done()
	log.Info("cron stopped")
	return nil
}

func (w *Warmer) runOnce(ctx context.Context, log *zap.Logger) {
	start := time.Now()
	res, err := w.WarmOnce(ctx)
	if err != nil {
		log.Error("warm.failed", zap.Error(err))
		return
	}
	log.Info("warm.done",
		zap.Int("wells", res.Wells),
		zap.Int("hits", res.Hits),
		zap.Int("invalid", res.Invalid),
		zap.Duration("took", time.Since(start)))
}
