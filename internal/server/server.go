// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package server runs the development HTTP server for the blog.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/bigfanoftim/blog/internal/assets"
	"github.com/bigfanoftim/blog/internal/config"
	"github.com/bigfanoftim/blog/internal/handlers"
	"github.com/bigfanoftim/blog/internal/templates"
	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	SetupLogger(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	dc, err := cfg.Deployment()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"environment", dc.Environment(),
		"asset_prefix", dc.BasePrefix(),
	)

	e := New(cfg, dc)
	return startWithGracefulShutdown(ctx, e, cfg)
}

// New builds the Echo instance with middleware and routes.
func New(cfg *config.Config, dc assetpath.DeploymentContext) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	setupMiddleware(e, dc)
	setupRoutes(e, templates.SiteData{
		Title:       cfg.Site.Title,
		Description: "A personal blog.",
	})

	return e
}

func setupRoutes(e *echo.Echo, site templates.SiteData) {
	h := handlers.New(site)

	// Static files
	e.GET(assets.URLPrefix+"*", echo.WrapHandler(http.StripPrefix(assets.URLPrefix, assets.FileServer())))

	// Routes
	e.GET("/health", h.Health)
	e.GET("/", h.Home)
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	go func() {
		slog.Info("Server running", "url", cfg.BaseURL())
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for interrupt signal, cancellation or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case <-ctx.Done():
		slog.Info("shutting down server", "reason", ctx.Err())
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
