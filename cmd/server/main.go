package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/emojiboard/internal/adapter/httpserver"
	"github.com/pscheid92/emojiboard/internal/adapter/metrics"
	"github.com/pscheid92/emojiboard/internal/app"
	"github.com/pscheid92/emojiboard/internal/dataset"
	"github.com/pscheid92/emojiboard/internal/platform/config"
	"github.com/pscheid92/emojiboard/internal/platform/logging"
	"github.com/pscheid92/emojiboard/internal/platform/version"
)

func runGracefulShutdown(srv *httpserver.Server, cancelLoad context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		cancelLoad()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// loadContext bounds the dataset load by timeout. Zero means no deadline; the
// load then ends only when cancelled at shutdown.
func loadContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}

// startLoad reads the datasets in the background. A failure is logged by the
// service and leaves the dashboard unloaded for the life of the process.
func startLoad(cfg *config.Config, svc *app.Service) context.CancelFunc {
	ctx, cancel := loadContext(context.Background(), cfg.LoadTimeout)

	go func() {
		_ = svc.Load(ctx)
	}()

	return cancel
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", version.Get().String())

	registry := metrics.NewRegistry()
	m := metrics.New(registry)

	httpClient := &http.Client{}
	loader := dataset.NewLoader(
		dataset.NewSource(cfg.SummarySource, httpClient),
		dataset.NewSource(cfg.ExpandedSource, httpClient),
		clock,
	)
	appSvc := app.NewService(loader, clock, m)

	srv, err := httpserver.NewServer(cfg, appSvc, registry, m.HTTP, nil)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	cancelLoad := startLoad(cfg, appSvc)
	defer cancelLoad()

	done := runGracefulShutdown(srv, cancelLoad)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
