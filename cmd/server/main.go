package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jaminalder/time-travel-tic-tac-toe/internal/app"
	"github.com/jaminalder/time-travel-tic-tac-toe/internal/config"
	"github.com/jaminalder/time-travel-tic-tac-toe/internal/web"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to YAML config file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	conf := config.MustLoad(*configPath)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: conf.SlogLevel()}))

	if err := run(logger, conf); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := app.NewService(app.WithLogger(logger), app.WithMetrics(app.NewMetrics(reg)))
	srv := &http.Server{
		Addr:              conf.HTTPAddr,
		Handler:           web.NewServer(svc, logger, reg),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", "addr", conf.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("received signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}
