package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/insiderwatch/tracker/internal/app"
)

func main() {
	// Resolve config path
	configPath := os.Getenv("TRACKER_CONFIG")

	a, err := app.NewApp(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracker: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("Session failed")
		a.Close()
		os.Exit(1)
	}

	a.Close()
	a.Logger.Info().Msg("Tracker stopped")
}
