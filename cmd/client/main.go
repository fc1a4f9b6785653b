package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apiclient "github.com/sportlane/shopclient/internal/client/api"
	"github.com/sportlane/shopclient/internal/client/auth"
	"github.com/sportlane/shopclient/internal/client/cache"
	"github.com/sportlane/shopclient/internal/client/cli"
	"github.com/sportlane/shopclient/internal/client/realtime"
	"github.com/sportlane/shopclient/internal/client/session"
	"github.com/sportlane/shopclient/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:3000", "API server URL")
	wsURL := flag.String("ws", "ws://localhost:3000/ws", "Realtime server URL")
	dbPath := flag.String("db", "shopclient.db", "Path to local database")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Wiring: the guard supplies tokens to the API client and the API
	// client performs the guard's refresh calls, so the token source is
	// attached after both exist.
	state := session.NewState()
	client := apiclient.NewClient(*serverURL)
	guard := session.NewGuard(client, boltStorage, state, logger)
	client.SetTokenSource(guard)

	authService := auth.NewService(client, boltStorage, state, logger)
	if _, err := authService.Restore(ctx); err != nil {
		logger.Warn("failed to restore session", "error", err)
	}

	store := cache.New(logger)
	events := realtime.New(*wsURL, logger)
	synced := realtime.NewSynchronizer(events, store, logger)

	commands := cli.New(client, authService, guard, state, store, events, synced, boltStorage, boltStorage)
	if err := commands.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Sportlane Shop Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
