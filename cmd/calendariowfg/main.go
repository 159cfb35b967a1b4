package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/config"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/logging"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/server"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.Production())

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer pool.Close()

	eventStore := postgres.NewEventStore(pool)
	userStore := postgres.NewUserStore(pool)
	sessionStore := postgres.NewSessionStore(pool)

	srv := server.New(eventStore, userStore, sessionStore, cfg.Production(), logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Sweep expired sessions and stale rate-limit windows hourly.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if n, err := sessionStore.DeleteExpired(sweepCtx); err != nil {
					logger.Error("sweep sessions", "error", err)
				} else if n > 0 {
					logger.Info("swept expired sessions", "count", n)
				}
				srv.RateLimiter().Cleanup()
			}
		}
	}()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
