package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KanchanaRathnayaka847/Inventory-Management-System/internal/application/health"
	"github.com/KanchanaRathnayaka847/Inventory-Management-System/internal/config"
	"github.com/KanchanaRathnayaka847/Inventory-Management-System/pkg/adapters/metrics/prometheus"
	"github.com/KanchanaRathnayaka847/Inventory-Management-System/pkg/adapters/storage/sqlite"
	"github.com/KanchanaRathnayaka847/Inventory-Management-System/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting Inventory System",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Open the database file, creating it on first run
	ctx := context.Background()
	store, err := sqlite.Open(ctx, sqlite.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		BusyTimeout:     cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	metricsCollector := prometheus.NewCollector()

	// Start the storage health monitor
	monitor := health.NewMonitor(
		store,
		metricsCollector,
		cfg.Health.CheckInterval,
		cfg.Health.CheckTimeout,
		logger,
	)
	monitor.Start()

	// Initialize API servers
	httpServer := http.NewServer(&http.Config{
		Addr:              cfg.HTTPAddr,
		Logger:            logger,
		Metrics:           metricsCollector,
		ReadHeaderTimeout: cfg.Timeouts.ReadHeader,
		ReadTimeout:       cfg.Timeouts.Read,
		WriteTimeout:      cfg.Timeouts.Write,
		IdleTimeout:       cfg.Timeouts.Idle,
	})

	var metricsServer *prometheus.Server
	if cfg.MetricsAddr != "" {
		metricsServer = prometheus.NewServer(cfg.MetricsAddr, logger)
	}

	// Start servers
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	if metricsServer != nil {
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.Fatal("metrics server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("Inventory System started",
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("metrics_addr", cfg.MetricsAddr),
		zap.String("database", store.Path()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	// Shutdown components
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", zap.Error(err))
		}
	}

	monitor.Stop()

	if err := store.Close(); err != nil {
		logger.Error("database close error", zap.Error(err))
	}

	logger.Info("Inventory System shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
