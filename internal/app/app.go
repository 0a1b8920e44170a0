// Package app controls the HTTP transport lifecycle when the server is not
// running over stdio.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/remoteops/docker-ssh-mcp-server/internal/http/health"
)

// App controls the HTTP server lifecycle.
type App struct {
	baseCtx         context.Context
	server          *http.Server
	health          *health.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New initializes the HTTP server with the MCP handler and health endpoints.
func New(baseCtx context.Context, listen, path string, handler http.Handler, logger *slog.Logger, shutdownTimeout time.Duration) (*App, error) {
	if handler == nil {
		return nil, fmt.Errorf("handler is nil")
	}
	if baseCtx == nil {
		return nil, fmt.Errorf("base context is nil")
	}
	if path == "" {
		path = "/mcp"
	}

	healthHandler := health.New()
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.HandleFunc("/healthz", healthHandler.Healthz)
	mux.HandleFunc("/readyz", healthHandler.Readyz)

	srv := &http.Server{
		Addr:         listen,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &App{
		baseCtx:         baseCtx,
		server:          srv,
		health:          healthHandler,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.health.SetReady()
		if a.logger != nil {
			a.logger.Info("http server started", "addr", a.server.Addr)
		}
		errCh <- a.server.ListenAndServe()
	}()

	for {
		select {
		case <-ctx.Done():
			if a.logger != nil {
				a.logger.Info("shutdown requested")
			}
			return a.shutdown()
		case err := <-errCh:
			if err == nil || errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			if a.logger != nil {
				a.logger.Error("http server error", "error", err)
			}
			return err
		}
	}
}

func (a *App) shutdown() error {
	a.health.SetNotReady()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(a.baseCtx), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
