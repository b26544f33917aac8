package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"yatta-chat/channel"
	"yatta-chat/contract"
	"yatta-chat/domain"
	"yatta-chat/domain/event"
	"yatta-chat/infrastructure/rest"
	"yatta-chat/internal"
	"yatta-chat/repositories"
	"yatta-chat/runtime"
	"yatta-chat/runtime/workers"
	"yatta-chat/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the session lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Local archive (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	archive := repositories.NewMessageArchive(db, log, config.LimitMessages)

	// 3. Remote services
	api := rest.NewClient(log, config.APIBaseURL, config.HTTPTimeout)
	tokens := rest.NewTokenClient(log, config.APIBaseURL, config.HTTPTimeout)

	// 4. Realtime channels
	events := make(chan event.DomainEvent, config.BufferSize)
	commands := make(chan domain.Command, config.BufferSize)
	dialer := websocket.DefaultDialer

	messages := channel.NewMessageChannel(log, dialer, config.ChatWSURL, api, events, config.RetireGrace)
	inbox := channel.NewInboxChannel(log, dialer, config.InboxWSURL(), events, config.RetireGrace, channel.Backoff{
		Base:     config.InboxRetryBase,
		Max:      config.InboxRetryMax,
		Attempts: config.InboxRetryAttempts,
	})

	// 5. Session & sinks
	notifier := NewTerminalNotifier()
	self := domain.FlexID(config.UserID)
	session := runtime.NewSession(log, self, runtime.Deps{
		API:      api,
		Tokens:   tokens,
		Messages: messages,
		Inbox:    inbox,
		Notifier: notifier,
		Media:    &TerminalMedia{},
	}, commands, events, config.PollInterval)
	session.Add(
		sink.NewArchiveSink(archive, log),
		sink.NewNotifySink(notifier, self, session.Selected),
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Debug inspector over the archive, when asked for
	if config.DebugPort > 0 {
		internal.StartDebugServer(db, config.DebugPort, "/inspect", func() map[string]any {
			return map[string]any{
				"User": config.UserID,
				"Time": time.Now().Format(time.RFC822),
			}
		})
		log.Info("Archive inspector started", "port", config.DebugPort)
	}

	// 8. Run the session under supervision; the REPL feeds it commands.
	sup := workers.NewSupervisor(log)
	done := make(chan struct{})
	go func() {
		sup.Add(session).Run(ctx)
		close(done)
	}()

	repl := NewRepl(commands, stop)
	repl.Run(ctx)

	sup.Stop()
	<-done
	log.Info("Program stopped cleanly")
	return nil
}

var _ contract.Notifier = (*TerminalNotifier)(nil)
