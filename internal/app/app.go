// internal/app/app.go
// Wiring dependency opsional + registrasi tool & routes

package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"mcp-skin/internal/cache"
	"mcp-skin/internal/config"
	mcphandlers "mcp-skin/internal/handlers/mcp"
	"mcp-skin/internal/mcp"
	"mcp-skin/internal/mcp/llm"
	mysqlrepo "mcp-skin/internal/repositories/mysql"
	"mcp-skin/internal/util"
	"mcp-skin/pkg/db"
)

// App menampung router utama + resource yang perlu ditutup.
type App struct {
	Router *mux.Router
	DB     *sql.DB
	Cache  *cache.ProfileCache

	cfg *config.Config
	log *zap.Logger
}

// New membuat instance App: dependency opsional (MySQL, Redis, OpenAI)
// dipasang kalau dikonfigurasi, lalu semua routes (HTTP & MCP) didaftarkan.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Router: mux.NewRouter(), cfg: cfg, log: log}

	mcphandlers.SetLogger(log.Named("mcp"))
	mcphandlers.SetClock(util.RealClock{})
	mcp.SetLogger(log.Named("router"))

	// === init DB (sumber parameter sumur) ===
	if dsn := cfg.MySQLDSN(); dsn != "" {
		conn, err := db.NewMySQL(ctx, dsn, db.Options{
			MaxOpen:   cfg.MySQL.MaxOpen,
			MaxIdle:   cfg.MySQL.MaxIdle,
			PingTries: 20,
		}, log)
		if err != nil {
			log.Error("mysql not ready; well lookup disabled", zap.Error(err))
			mcphandlers.SetWellSource(nil)
		} else {
			a.DB = conn
			mcphandlers.SetWellSource(&mysqlrepo.WellRepo{DB: conn})
		}
	} else {
		log.Warn("DB_DSN/MYSQL_HOST empty; skipping DB init")
		mcphandlers.SetWellSource(nil)
	}

	// === init Redis (cache profil) ===
	if cfg.Redis.Addr != "" {
		pc, err := cache.NewFromAddr(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			log.Warn("redis not reachable; profile cache disabled", zap.Error(err))
		} else {
			a.Cache = pc
		}
	}
	mcphandlers.SetProfileCache(a.Cache)

	// === init LLM (explain + chooser) ===
	client, err := llm.New(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model)
	if err != nil {
		log.Warn("LLM disabled; explain uses deterministic text", zap.Error(err))
		client = nil
	}
	mcphandlers.SetLLMClient(client)
	mcp.SetChooser(client)

	// ---- MCP (Model Context Protocol) ----
	registerMCPTools()
	if err := mcp.VerifyCatalog(); err != nil {
		return nil, err
	}

	// ---- HTTP routes ----
	RegisterRoutes(a.Router, cfg)

	return a, nil
}

// Close menutup DB & Redis.
func (a *App) Close() error {
	var errs []error
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// Server membangun http.Server dengan timeout standar.
func (a *App) Server(addr string, h http.Handler) *http.Server {
	if h == nil {
		h = a.Router
	}
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// ----------------- MCP Wiring -----------------

// registerMCPTools mendaftarkan semua tool MCP ke registry.
func registerMCPTools() {
	mcp.RegisterFunc("compute_pressure_profile", mcphandlers.ComputePressureProfileHandler)
	mcp.RegisterFunc("compute_skin_sweep", mcphandlers.ComputeSkinSweepHandler)
	mcp.RegisterFunc("explain_skin_effect", mcphandlers.ExplainSkinEffectHandler)
	mcp.RegisterFunc("get_well_parameters", mcphandlers.GetWellParametersHandler)
	mcp.RegisterFunc("get_form_defaults", mcphandlers.GetFormDefaultsHandler)
}

// RegisterMCPTools diekspor untuk binary mcp-router.
func RegisterMCPTools() { registerMCPTools() }
