package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/chat-archive/internal/cache/redis"
	"github.com/oggyb/chat-archive/internal/config"
	"github.com/oggyb/chat-archive/internal/db/gormdb"
	"github.com/oggyb/chat-archive/internal/handler"
	mesgRepo "github.com/oggyb/chat-archive/internal/repository/gorm/message"
	routes "github.com/oggyb/chat-archive/internal/router"
	"github.com/oggyb/chat-archive/internal/scheduler"
	"github.com/oggyb/chat-archive/internal/server"
	"github.com/oggyb/chat-archive/internal/service"
	"github.com/oggyb/chat-archive/internal/webhook"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()
	log.Printf("[Main] Using database %s", cfg.MaskedPostgresDSN())

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	// Init DB.
	dsn := cfg.PostgresDSN()
	db, err := gormdb.New(dsn)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}

	// Init the erasure-notification webhook, if configured. Notices are
	// best-effort, so a failing endpoint only logs a warning here.
	var notifier webhook.Notifier
	if cfg.Webhook.URL != "" {
		client := webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.AuthKey)
		if err := client.Health(rootCtx); err != nil {
			log.Printf("[Main] Erasure webhook not reachable: %v", err)
		}
		notifier = client
	}

	// Init repository and services.

	// Message
	msgRepository := mesgRepo.NewRepository(db)
	msgSvc := service.NewMessageService(msgRepository, cache, notifier)

	// Daily-stats refresher
	cron := scheduler.NewSchedulerService(
		scheduler.JobFunc(msgSvc.RefreshDailyStats),
		cfg.Stats.Interval,
		cfg.Stats.RunTimeout,
	)

	// HTTP dependencies & server wiring.

	// Handlers
	homeHandler := handler.NewHomeHandler()
	messageHandler := handler.NewMessageHandler(msgSvc, cron)

	// Init route dependencies
	deps := routes.AppDeps{
		Home:    homeHandler,
		Message: messageHandler,
	}

	// Init Server
	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		log.Printf("HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Start the stats refresher after everything is wired up.
	if err := cron.Start(); err != nil {
		log.Fatalf("Stats refresher error: %v", err)
	}
	log.Println("[Main] Stats refresher started.")

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	// Give components some time to shut down cleanly.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop the refresher (waits for an in-flight run to finish or time out).
	log.Println("[Main] Stopping stats refresher...")
	if err := cron.Stop(); err != nil {
		log.Printf("[Main] Stats refresher did not stop cleanly: %v", err)
	} else {
		log.Println("[Main] Stats refresher stopped.")
	}

	// Gracefully shut down the HTTP server.
	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		log.Println("[Main] HTTP server stopped.")
	}

	log.Println("[Main] Shutdown complete.")
}
