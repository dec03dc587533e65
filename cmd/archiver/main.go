// The archiver binary runs the message archival job: every interval it
// moves messages older than the retention window from the live keyspace
// to the archive keyspace, chunk by chunk.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"minislack/domain/event"
	"minislack/internal"
	"minislack/repositories"
	"minislack/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting so the
// deferred database cleanup always executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.SetupLogger(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Wiring
	counter := event.NewCounter()
	dispatcher := event.NewDispatcher(
		event.NewCountingHandler(counter),
		event.NewNotificationHandler(log),
	)
	messageRepository := repositories.NewMessageRepository(db, log, config.LimitMessages)
	archiver := services.NewArchiveService(messageRepository, dispatcher, log,
		config.MessageRetention, config.ArchiveChunkSize)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Run until shutdown. One immediate pass first, then the ticker.
	log.Info("Starting archival loop",
		"retention", config.MessageRetention, "interval", config.ArchiveInterval)
	if _, err := archiver.RunOnce(); err != nil {
		return err
	}
	if err := archiver.RunEvery(ctx, config.ArchiveInterval); err != nil && ctx.Err() == nil {
		return err
	}

	log.Info("Program stopped cleanly")
	return nil
}
