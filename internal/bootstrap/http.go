package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/campushire/campushire-web/config"
	httpx "github.com/campushire/campushire-web/internal/http"
	"golang.org/x/sync/errgroup"
)

// BuildHandler assembles the full HTTP handler from configuration and
// the service container.
func BuildHandler(cfg *config.AppConfig, services ServiceContainer, logger *slog.Logger) (http.Handler, error) {
	return httpx.NewRouter(httpx.RouterServices{
		Sessions:          services.Sessions,
		Jobs:              services.Jobs,
		Applications:      services.Applications,
		Users:             services.Users,
		Notes:             services.Notes,
		Files:             services.Files,
		AccessCookieName:  cfg.Auth.AccessCookieName,
		RefreshCookieName: cfg.Auth.RefreshCookieName,
		CookieDomain:      cfg.HTTP.CookieDomain,
		SecureCookies:     !cfg.IsDev,
		AdminLandingPath:  cfg.Auth.AdminLandingPath,
		OAuthStartURL:     cfg.Backend.URL + "/auth/google",
		Logger:            logger,
	})
}

// RunServer serves HTTP until ctx is cancelled, then drains connections
// within the configured shutdown timeout.
func RunServer(ctx context.Context, cfg *config.HTTPConfig, handler http.Handler, logger *slog.Logger) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
