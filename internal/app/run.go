package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/visgallery/internal/ctxlog"
)

const shutdownTimeout = 5 * time.Second

// Run serves the gallery until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.startHealthcheckServer(a.config.HealthcheckPort)

	a.httpServer = &http.Server{
		Addr:              a.config.Addr,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("🚀 Gallery server starting", "address", a.config.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown requested.")
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("gallery server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	a.live.Close()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("gallery server shutdown: %w", err))
	}
	if err := a.closeHealthCheckServer(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	a.logger.Info("🏁 Gallery server stopped.")
	return runErr
}
