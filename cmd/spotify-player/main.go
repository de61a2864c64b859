package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"

	"spotify_player/internal/auth"
	"spotify_player/internal/config"
	"spotify_player/internal/display"
	"spotify_player/internal/menu"
	"spotify_player/internal/player"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, display.Err.Render("Error: Spotify credentials not configured!"))
		fmt.Fprintln(os.Stderr, "Please set the following environment variables:")
		fmt.Fprintln(os.Stderr, "  - SPOTIFY_CLIENT_ID")
		fmt.Fprintln(os.Stderr, "  - SPOTIFY_CLIENT_SECRET")
		fmt.Fprintln(os.Stderr, "  - SPOTIFY_REDIRECT_URI (optional, default: "+config.DefaultRedirectURI+")")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println(display.Title.Render("Starting Spotify CLI Player..."))

	client, err := auth.New(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURI, logger).StartAuthFlow(ctx)
	if err != nil {
		logger.Fatal("authentication failed", "err", err)
	}

	m := menu.New(player.New(client), os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	// An interrupt during a blocking read or network call simply ends the
	// process; the in-flight call is abandoned.
	select {
	case <-ctx.Done():
		fmt.Println()
		fmt.Println(display.OK.Render("Program interrupted. Goodbye!"))
	case err := <-done:
		if err != nil {
			logger.Error("menu loop failed", "err", err)
		}
	}
}
