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

	"parley/infrastructure/ws"
	"parley/internal"
	"parley/observability"
	"parley/repositories"
	"parley/runtime"
	"parley/runtime/workers"
	"parley/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the gateway and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core wiring
	store := repositories.NewBadgerStore(db, log)
	users := repositories.NewUserRepository(db)
	monitoring := observability.NewMonitoringManager(log)
	limiter := runtime.NewRateLimiter(log, config.RateLimitWindow, config.RateLimitDefault,
		map[string]int{
			"typing":       30,
			"signal":       60,
			"send_message": 10,
		})
	orchestrator := runtime.NewOrchestrator(log, store, monitoring, limiter)

	permissions := services.NewPermissionService(log, store)
	chat := services.NewChatService(log, orchestrator, permissions, store)
	voice := services.NewVoiceService(log, orchestrator, permissions, store)
	authService := services.NewAuthService(users, config.AuthTokenDuration)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers
	sup := workers.NewSupervisor(log)
	sup.Add(limiter, workers.NewHealthMonitoringWorker(log, orchestrator, monitoring, config.MetricInterval))
	supDone := make(chan struct{})
	go func() {
		defer close(supDone)
		sup.Run(ctx)
	}()

	// 6. HTTP Gateway
	dispatcher := ws.NewDispatcher(log, orchestrator, authService, chat, voice)
	gateway := ws.NewServer(log, dispatcher, authService,
		config.Origins(), config.ConnectionBufferSize, config.AuthTimeout)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           gateway.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if config.DebugPort > 0 {
		internal.StartDebugServer(db, config.DebugPort, nil, func() map[string]any {
			stats := monitoring.GetLatest()
			return map[string]any{
				"Connections":   stats.Connections,
				"Rooms":         stats.Rooms,
				"VoiceRooms":    stats.VoiceRooms,
				"FannedEvents":  stats.FannedEvents,
				"DroppedEvents": stats.DroppedEvents,
			}
		})
		log.Info("Debug server started", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
	}

	// Use an error channel to capture ListenAndServe() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gateway", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("gateway error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Gateway shutdown failed", "err", err)
	}
	stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
