package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lottotrack/config"
	"lottotrack/web"

	log "github.com/sirupsen/logrus"
)

// shutdownTimeout bounds how long in-flight requests may take after a shutdown signal
const shutdownTimeout = 10 * time.Second

// Run initializes the application and serves HTTP until ctx is cancelled
func Run(ctx context.Context) error {
	cfg := config.Get()
	if err := ConfigureLogging(cfg); err != nil {
		return err
	}
	log.WithField("environment", cfg.Environment).Info("Starting lottotrack...")

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	sessions, err := web.NewSessionManager(cfg.SecretKey, cfg.SessionTimeout, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("failed to initialize sessions: %w", err)
	}

	handler := web.NewHandler(a.userService, a.lottoService, a.statService, a.recommendService, sessions, a.db)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           web.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Shutdown timeout exceeded")
		return fmt.Errorf("http server shutdown: %w", err)
	}

	log.Info("Shutdown completed")
	return nil
}
