package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autonomous-barman/config"
	_ "autonomous-barman/docs" // Swagger docs
	"autonomous-barman/internal/bar/delivery/http"
	"autonomous-barman/internal/bar/usecase"
	"autonomous-barman/internal/catalog"
	"autonomous-barman/internal/dispatch"
	"autonomous-barman/internal/httpserver"
	"autonomous-barman/internal/intent"
	"autonomous-barman/internal/intent/command"
	"autonomous-barman/internal/intent/pattern"
	"autonomous-barman/internal/middleware"
	"autonomous-barman/internal/pour"
	"autonomous-barman/pkg/dispenser"
	"autonomous-barman/pkg/llmprovider"
	"autonomous-barman/pkg/log"
	"autonomous-barman/pkg/telemetry"
)

// @title       Autonomous Barman API
// @description Conversational cocktail ordering: chat with the barman and the dispenser pours confirmed drinks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Barman stopped with error: ", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Autonomous Barman...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Telemetry (optional)
	if cfg.Telemetry.Enabled {
		telCfg, shutdown, err := telemetry.Init(ctx)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Warnf(ctx, "Telemetry shutdown: %v", err)
			}
		}()
		logger.Infof(ctx, "✅ Telemetry exporting to %s", telCfg.Endpoint)
	}

	// 4. Catalog and pump registry
	mode, err := catalog.ParsePortionMode(cfg.Bar.PortionMode)
	if err != nil {
		return err
	}
	cat, reg, err := catalog.Load(cfg.Bar.CatalogPath, mode)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "Catalog loaded: %d recipes, %d pumps, %s portions", cat.Len(), len(reg.Channels()), mode)

	// 5. LLM provider
	provider, err := llmprovider.InitializeProvider(&cfg.LLM)
	if err != nil {
		return err
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return err
	}
	llm := llmprovider.NewManager(provider, managerCfg, logger)
	logger.Infof(ctx, "✅ LLM provider: %s (%s)", llm.Name(), llm.Model())

	// 6. Dispenser
	device, err := dispenser.New(dispenser.Config{
		Host:       cfg.Dispenser.Host,
		Port:       cfg.Dispenser.Port,
		Path:       cfg.Dispenser.Path,
		StatusPath: cfg.Dispenser.StatusPath,
		HealthPath: cfg.Dispenser.HealthPath,
		Timeout:    cfg.Dispenser.Timeout,
	})
	if err != nil {
		return err
	}
	defer device.Close()
	logger.Infof(ctx, "Dispenser endpoint: %s", device.Endpoint())

	// 7. Intent resolver
	var resolver intent.Resolver
	switch cfg.Bar.Resolver {
	case config.ResolverCommand:
		resolver = command.New(logger, cat)
	default:
		resolver = pattern.New(logger, cat)
	}
	logger.Infof(ctx, "Intent resolver: %s", resolver.Strategy())

	// 8. Bar use case and delivery
	barUC := usecase.New(
		logger,
		llm,
		resolver,
		cat,
		reg,
		pour.New(reg),
		dispatch.New(logger, device),
		cfg.Bar.MaxHistoryTurns,
	)
	barHandler := http.New(logger, barUC)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		}),
		BarHandler: barHandler,
		Bar: httpserver.BarInfo{
			Resolver:    string(resolver.Strategy()),
			PortionMode: string(mode),
			Recipes:     cat.Len(),
			Pumps:       len(reg.Channels()),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 10. Run
	return httpServer.Run(ctx)
}
