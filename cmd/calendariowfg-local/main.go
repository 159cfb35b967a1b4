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
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store/sqlite"
)

// calendariowfg-local serves the calendar over an embedded SQLite database
// with every route open. Meant for single-user or internal-network use.
func main() {
	cfg := config.LoadLocal()
	logger := logging.Setup(cfg.LogLevel, cfg.Production())

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	srv := server.New(sqlite.NewEventStore(db), nil, nil, cfg.Production(), logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "db", cfg.DBPath)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
