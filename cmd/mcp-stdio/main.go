// cmd/mcp-stdio/main.go
// Server MCP (Model Context Protocol) untuk klien agen: stdio atau streamable HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"mcp-skin/internal/app"
	"mcp-skin/internal/config"
	"mcp-skin/internal/logger"
	"mcp-skin/internal/mcpserver"
)

var BuildVersion = "dev"

func main() {
	transport := flag.String("transport", "stdio", "Transport mode: stdio or http")
	port := flag.String("port", "8091", "HTTP port (only used with -transport http)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// stdout dipakai protokol stdio; log wajib ke stderr.
	log := logger.Must(cfg.LogLevel, cfg.LogFormat, "stderr").With(zap.String("app", cfg.AppName+"-mcp"))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("init app", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	srv, err := mcpserver.New(BuildVersion)
	if err != nil {
		log.Fatal("init mcp server", zap.Error(err))
	}

	switch *transport {
	case "stdio":
		log.Info("MCP server starting (stdio)")
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal("server error", zap.Error(err))
		}
	case "http":
		hs := a.Server(":"+*port, mcpserver.HTTPHandler(srv))
		hs.WriteTimeout = 0 // streaming
		go func() {
			log.Info("MCP server listening", zap.String("addr", hs.Addr))
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("HTTP server error", zap.Error(err))
			}
		}()
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	default:
		log.Fatal("unknown transport (use stdio or http)", zap.String("transport", *transport))
	}
}
