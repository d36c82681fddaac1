// cmd/worker/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"mcp-skin/internal/cache"
	"mcp-skin/internal/config"
	"mcp-skin/internal/logger"
	mysqlrepo "mcp-skin/internal/repositories/mysql"
	"mcp-skin/internal/worker"
	"mcp-skin/pkg/db"
)

func main() {
	schedule := flag.String("schedule", "@every 5m", "jadwal cron putaran warm")
	once := flag.Bool("once", false, "jalankan satu putaran lalu keluar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Must(cfg.LogLevel, cfg.LogFormat).With(zap.String("app", cfg.AppName+"-worker"))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewMySQL(ctx, cfg.MySQLDSN(), db.Options{
		MaxOpen: cfg.MySQL.MaxOpen, MaxIdle: cfg.MySQL.MaxIdle, PingTries: 20,
	}, log)
	if err != nil {
		log.Fatal("mysql", zap.Error(err))
	}
	defer conn.Close()

	if cfg.Redis.Addr == "" {
		log.Fatal("REDIS_ADDR empty; nothing to warm")
	}
	pc, err := cache.NewFromAddr(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	defer pc.Close()

	w := &worker.Warmer{Wells: &mysqlrepo.WellRepo{DB: conn}, Cache: pc, Log: log}
	log.Info("Worker started", zap.String("schedule", *schedule))
	if *once {
		res, err := w.WarmOnce(ctx)
		if err != nil {
			log.Fatal("warm", zap.Error(err))
		}
		log.Info("warm.done", zap.Int("wells", res.Wells), zap.Int("invalid", res.Invalid))
		return
	}
	if err := w.Schedule(ctx, *schedule); err != nil {
		log.Fatal("schedule", zap.Error(err))
	}
}
