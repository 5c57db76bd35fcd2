package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/dealey-labs/jfkdex"
	"github.com/dealey-labs/jfkdex/internal/config"
	"github.com/dealey-labs/jfkdex/internal/domain"
	logpkg "github.com/dealey-labs/jfkdex/internal/logger"
	"github.com/dealey-labs/jfkdex/internal/metrics"
	mcpTransport "github.com/dealey-labs/jfkdex/internal/transport/mcp"
	"github.com/dealey-labs/jfkdex/internal/transport/web"
	healthuc "github.com/dealey-labs/jfkdex/internal/usecase/health"
	pageuc "github.com/dealey-labs/jfkdex/internal/usecase/page"
	searchuc "github.com/dealey-labs/jfkdex/internal/usecase/search"
	"github.com/dealey-labs/jfkdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	// The archive credential is the only startup-blocking requirement.
	// Refuse to serve before any tool is registered.
	if cfg.Archive.APIKey == "" {
		logger.Fatal("JFK_API_KEY environment variable is not set",
			zap.Error(domain.ErrMissingCredential),
		)
	}

	logger.Info("Starting jfkdex MCP server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("mode", cfg.Server.Mode),
	)

	// Register tool metrics explicitly (no init())
	metrics.RegisterToolMetrics()

	client, err := buildClient(cfg)
	if err != nil {
		logger.Fatal("Failed to create archive client", zap.Error(err))
	}

	// Create use case services
	searchSvc := searchuc.New(client.Search())
	pageSvc := pageuc.New(client.Pages())
	healthSvc := healthuc.New(client)

	// Create MCP server with all five tools registered
	server := mcpTransport.NewServer(searchSvc, pageSvc, logger)

	switch cfg.Server.Mode {
	case "stdio":
		runStdio(server, logger)
	case "http":
		runHTTP(server, healthSvc, cfg, logger)
	}
}

// buildClient assembles the archive client from config. The Prometheus
// observer only matters when a /metrics endpoint exists, so it is wired
// in HTTP mode only.
func buildClient(cfg config.Config) (*jfkdex.Client, error) {
	opts := []jfkdex.Option{
		jfkdex.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Archive.TimeoutSec) * time.Second,
		}),
	}
	if cfg.Archive.BaseURL != "" {
		opts = append(opts, jfkdex.WithBaseURL(cfg.Archive.BaseURL))
	}
	if cfg.Server.Mode == "http" {
		opts = append(opts, jfkdex.WithPrometheus(prometheus.DefaultRegisterer))
	}
	return jfkdex.New(cfg.Archive.APIKey, opts...)
}

// runStdio serves MCP over stdin/stdout until the transport closes or a
// signal arrives. All logging goes to stderr; stdout belongs to the
// protocol.
func runStdio(server *mcpTransport.Server, logger *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Serving on stdio")
	if err := server.ServeStdio(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("Stdio server error", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// runHTTP serves MCP over streamable HTTP behind the middleware chain,
// with health and metrics endpoints alongside.
func runHTTP(server *mcpTransport.Server, healthSvc *healthuc.Service, cfg config.Config, logger *zap.Logger) {
	r := web.NewRouter(server.Handler(), healthSvc, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
