// internal/handlers/mcp/deps.go
// Dependency yang di-inject dari app + flag readiness

package mcp

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"mcp-skin/internal/cache"
	mysqlrepo "mcp-skin/internal/repositories/mysql"
	"mcp-skin/internal/util"
)

// WellSource dipenuhi oleh *mysqlrepo.WellRepo; test memakai fake.
type WellSource interface {
	GetWell(ctx context.Context, wellID string) (*mysqlrepo.WellRow, error)
	GetWells(ctx context.Context, ids []string) ([]mysqlrepo.WellRow, error)
	ListWells(ctx context.Context, f mysqlrepo.WellFilter) ([]mysqlrepo.WellRow, error)
}

var (
	wellSource   WellSource
	profileCache *cache.ProfileCache
	clock        util.Clock = util.RealClock{}
	logger                  = zap.NewNop()

	readyWells bool
	readyCache bool
)

func SetWellSource(s WellSource) {
	wellSource = s
	readyWells = s != nil
}

// WellSourceConfigured dipakai layer HTTP untuk memutuskan route admin.
func WellSourceConfigured() WellSource { return wellSource }

func SetProfileCache(c *cache.ProfileCache) {
	profileCache = c
	readyCache = c != nil
}

func SetClock(c util.Clock) {
	if c != nil {
		clock = c
	}
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// ReposStatus mengembalikan status siap/tidaknya dependency opsional.
func ReposStatus() map[string]bool {
	return map[string]bool{
		"wells":         readyWells,
		"profile_cache": readyCache,
		"llm":           llmReady(),
	}
}

// ===== counters untuk /metrics =====

var (
	evalTotal   atomic.Int64
	evalErrors  atomic.Int64
	cacheHits   atomic.Int64
	sweepTotal  atomic.Int64
	explainLLM  atomic.Int64
	explainFall atomic.Int64
)

type Counters struct {
	Evaluations     int64
	EvalErrors      int64
	CacheHits       int64
	Sweeps          int64
	ExplainLLM      int64
	ExplainFallback int64
}

func Stats() Counters {
	return Counters{
		Evaluations:     evalTotal.Load(),
		EvalErrors:      evalErrors.Load(),
		CacheHits:       cacheHits.Load(),
		Sweeps:          sweepTotal.Load(),
		ExplainLLM:      explainLLM.Load(),
		ExplainFallback: explainFall.Load(),
	}
}
