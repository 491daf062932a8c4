package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-hris-web/internal/config"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func NewHTTPServer(handler http.Handler, cfg config.Config) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// StartHTTPServer menjalankan server dan menunggu SIGINT/SIGTERM untuk graceful shutdown.
// Writes still in flight get shutdownTimeout to finish.
func StartHTTPServer(handler http.Handler, cfg config.Config, auditLogger AuditLogger) error {
	log := zap.L().Named("bootstrap.server")
	server := NewHTTPServer(handler, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server running",
			zap.String("port", cfg.Port),
			zap.String("api_base_url", cfg.APIBaseURL),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	auditLogger.Log(ctx, AuditLog{
		Action:  "SERVER_STARTED",
		Message: "Server is accepting requests",
		Meta:    map[string]any{"port": cfg.Port},
	})

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutdown signal received")

	// Audit log BEFORE shutdown
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
		return err
	}
	log.Info("Server exited gracefully")
	return nil
}
