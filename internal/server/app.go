// Package server initializes and runs the session backend. It wires the
// configured store backend, the upload storage, and the HTTP endpoint, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akorlov/mapmark/internal/logging"
	"github.com/akorlov/mapmark/internal/server/config"
	"github.com/akorlov/mapmark/internal/server/httpapi"
	"github.com/akorlov/mapmark/internal/server/services"
	"github.com/akorlov/mapmark/internal/server/shared/db"
	"github.com/akorlov/mapmark/internal/server/uploads"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config         *config.Config
	logger         logging.Logger
	sessionService *services.SessionService
	storage        uploads.Storage
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	rm, err := db.NewRepositoryManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	ss := services.NewSessionService(rm.Identities(), rm.RefreshTokens(), cfg, logger)

	var storage uploads.Storage
	switch cfg.UploadBackend {
	case config.UploadS3:
		storage, err = uploads.NewS3Storage(ctx, cfg)
	default:
		storage, err = uploads.NewLocalStorage(cfg.UploadDir)
	}
	if err != nil {
		return nil, fmt.Errorf("upload storage init error: %w", err)
	}

	return &App{config: cfg, logger: logger, sessionService: ss, storage: storage}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	handler := httpapi.NewHandler(app.logger, app.sessionService, app.storage)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: httpapi.NewRouter(handler, app.config.ClientOrigin),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, fmt.Sprintf("Listening on %s", app.config.EndpointAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, err.Error())
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, err.Error())
		}
	}
}
