package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"promptrelay.app/relay/common/id"
	"promptrelay.app/relay/common/llm"
	"promptrelay.app/relay/common/logger"
	"promptrelay.app/relay/common/otel"
	"promptrelay.app/relay/core/config"
	httprouter "promptrelay.app/relay/internal/http/router"
	"promptrelay.app/relay/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.DebugContext(ctx, "otel disabled (no endpoint configured)")
	}

	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	generator, err := llm.NewGenerator(ctx, llm.Config{
		Provider:  cfg.LLM.Provider,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm generator", "error", err)
		os.Exit(1)
	}
	defer generator.Close()

	if !cfg.LLM.Enabled() {
		slog.WarnContext(ctx, "no API key configured, generate requests will fail",
			"provider", generator.Provider())
	}

	slog.InfoContext(ctx, "relay starting",
		"env", cfg.Env,
		"provider", generator.Provider(),
		"model", generator.Model())

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	routerCfg := httprouter.RouterConfig{RequestIDHeader: cfg.HTTP.RequestIDHeader}
	if cfg.OTel.Enabled() {
		routerCfg.OTelServiceName = cfg.OTel.ServiceName
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           httprouter.New(service.NewServices(generator), routerCfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}
