// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mcp-skin/internal/app"
	"mcp-skin/internal/config"
	"mcp-skin/internal/logger"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Must(cfg.LogLevel, cfg.LogFormat).With(
		zap.String("app", cfg.AppName),
		zap.String("env", cfg.AppEnv),
		zap.String("build", BuildVersion),
	)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log) // <-- inisialisasi + inject semua repos
	if err != nil {
		log.Fatal("init app", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	srv := a.Server(":"+cfg.AppPort, nil)

	go func() {
		log.Info("API running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
}
