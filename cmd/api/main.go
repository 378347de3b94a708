package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fieldroutes/internal/api"
	"fieldroutes/internal/buildinfo"
	"fieldroutes/internal/config"
	"fieldroutes/internal/logger"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	os.Exit(run())
}

// run owns every deferred cleanup; main only turns its result into an exit
// status.
func run() int {
	log := logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config_invalid", "error", err)
		return 2
	}

	s, err := api.NewServer(cfg)
	if err != nil {
		log.Error("server_init_failed", "error", err)
		return 1
	}
	if c, ok := s.Cache.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 2)
	go func() {
		log.Info("api_listening", "addr", srv.Addr, "version", buildinfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	go func() {
		lctx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
		defer cancel()
		if err := s.Load(lctx); err != nil {
			log.Error("dataset_load_failed", "source", cfg.DataSource, "error", err)
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown_signal")
	case err := <-errc:
		log.Error("api_stopping", "error", err)
		shutdown(srv)
		return 1
	}
	shutdown(srv)
	return 0
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("shutdown_failed", "error", err)
	}
}
