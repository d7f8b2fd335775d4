package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/example/glass-calendar/internal/calendar"
	"github.com/example/glass-calendar/internal/config"
	httptransport "github.com/example/glass-calendar/internal/http"
	"github.com/example/glass-calendar/internal/logging"
	"github.com/example/glass-calendar/internal/remote"
	"github.com/example/glass-calendar/internal/store"
	"github.com/example/glass-calendar/internal/store/fallback"
)

func main() {
	// Load .env first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "calendar",
		Usage: "Calendar event service with remote-first storage and a demo fallback dataset.",
		Commands: []*cli.Command{
			serveCommand(),
			checkCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API.",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := logging.New(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			dataset, err := fallback.Open()
			if err != nil {
				return fmt.Errorf("failed to open fallback dataset: %w", err)
			}
			defer func() {
				if cerr := dataset.Close(); cerr != nil {
					logger.Error("failed to close fallback dataset", "error", cerr)
				}
			}()

			backend := store.Backend{Remote: remote.NewClient(cfg.BackendURL, cfg.BackendKey)}
			if backend.Configured() {
				logger.Info("remote backend configured", "url", cfg.BackendURL)
			} else {
				logger.Warn("no remote backend configured, running in demo mode")
			}

			events := store.New(backend, dataset, cfg.Organizer, logger, time.Now)

			eventHandler := httptransport.NewEventHandler(events, logger, time.Now)
			layoutHandler := httptransport.NewLayoutHandler(events, logger, time.Now)

			handler := httptransport.NewRouter(httptransport.RouterConfig{
				Events:     eventHandler,
				Layout:     layoutHandler,
				Middleware: []func(http.Handler) http.Handler{httptransport.RequestLogger(logger)},
			})

			server := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("failed to shutdown server", "error", err)
				}
			}()

			logger.Info("calendar API listening", "addr", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server encountered error: %w", err)
			}
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Probe backend connectivity with a one-week range query.",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := logging.New(cfg.LogLevel)

			client := remote.NewClient(cfg.BackendURL, cfg.BackendKey)
			if client == nil {
				logger.Warn("no remote backend configured; the service would run in demo mode")
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			window := calendar.Compute(calendar.ViewWeek, time.Now())
			events, err := client.QueryRange(ctx, window)
			if err != nil {
				return fmt.Errorf("backend probe failed: %w", err)
			}

			logger.Info("backend reachable", "events_this_week", len(events))
			return nil
		},
	}
}
