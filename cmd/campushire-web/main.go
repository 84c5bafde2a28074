// Command campushire-web serves the browser-facing tier of the CampusHire
// job board: session handling, role routing, and server-rendered pages
// backed by the platform API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/campushire/campushire-web/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger = bootstrap.LoggerFromConfig(&cfg.Observability)

	logger.InfoContext(ctx, "starting campushire-web",
		slog.Bool("dev", cfg.IsDev),
		slog.String("backend", cfg.Backend.URL),
		slog.String("addr", cfg.HTTP.Addr),
	)

	services, err := bootstrap.NewServices(&bootstrap.ServiceDeps{Config: &cfg, Logger: logger})
	if err != nil {
		return err
	}

	handler, err := bootstrap.BuildHandler(&cfg, services, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return bootstrap.RunServer(ctx, &cfg.HTTP, handler, logger)
}
