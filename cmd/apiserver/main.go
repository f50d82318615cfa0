// apiserver runs the CineStyle HTTP API: director matching, blending,
// classification, and constellation viewport sessions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/CineStyle-Engine/internal/application/blending"
	"github.com/turtacn/CineStyle-Engine/internal/application/constellation"
	"github.com/turtacn/CineStyle-Engine/internal/application/matching"
	"github.com/turtacn/CineStyle-Engine/internal/config"
	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/cache"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/turtacn/CineStyle-Engine/internal/interfaces/http"
)

var version = "dev"

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("http-port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Run on defaults and env overrides when no config file is present.
		fmt.Fprintf(os.Stderr, "warning: config file not loaded, using defaults: %v\n", err)
		if cfg, err = config.LoadFromEnv(); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: []string{cfg.Log.Output},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)
	logger.Info("starting cinestyle api server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Catalog: built-in unless a file is configured; optionally hot-reloaded.
	catalog := director.DefaultCatalog()
	if cfg.Catalog.Path != "" {
		catalog, err = director.LoadCatalogFile(cfg.Catalog.Path)
		if err != nil {
			logger.Fatal("failed to load catalog", logging.Err(err))
		}
	}
	provider := director.NewProvider(catalog)
	logger.Info("catalog loaded", logging.Int("directors", catalog.Len()))

	if cfg.Catalog.Watch {
		if err := director.WatchCatalogFile(ctx, cfg.Catalog.Path, provider, logger); err != nil {
			logger.Fatal("failed to watch catalog", logging.Err(err))
		}
	}

	metrics := prometheus.NewMetrics()

	// Optional match cache.
	var matchCache matching.MatchCache
	if cfg.Redis.Enabled {
		redisCache := cache.Connect(cache.RedisConfig{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			KeyPrefix:    cfg.Redis.KeyPrefix,
			DefaultTTL:   cfg.Redis.DefaultTTL,
		}, logger.Named("cache"))
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, running without match cache", logging.Err(err))
		} else {
			matchCache = redisCache
		}
	}

	matcher, err := matching.NewService(matching.ServiceConfig{
		Provider: provider,
		Logger:   logger.Named("matching"),
		Metrics:  metrics,
		Cache:    matchCache,
		CacheTTL: cfg.Redis.DefaultTTL,
	})
	if err != nil {
		logger.Fatal("failed to build matching service", logging.Err(err))
	}
	blender, err := blending.NewService(blending.ServiceConfig{
		Provider: provider,
		Logger:   logger.Named("blending"),
		Metrics:  metrics,
	})
	if err != nil {
		logger.Fatal("failed to build blending service", logging.Err(err))
	}
	sessions, err := constellation.NewService(constellation.ServiceConfig{
		Provider: provider,
		Logger:   logger.Named("constellation"),
		Metrics:  metrics,
	})
	if err != nil {
		logger.Fatal("failed to build constellation service", logging.Err(err))
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Mode:     cfg.Server.Mode,
		Version:  version,
		Provider: provider,
		Matcher:  matcher,
		Blender:  blender,
		Sessions: sessions,
		Logger:   logger.Named("http"),
		Metrics:  metrics,
	})
	server := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", logging.Err(err))
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Error("shutdown incomplete", logging.Err(err))
			os.Exit(1)
		}
	}
	logger.Info("server stopped")
}
