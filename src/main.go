package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"discograph/src/features/catalog"
	"discograph/src/features/config"
	"discograph/src/features/hosting"
	"discograph/src/features/logging"
	"discograph/src/features/publishing"
	"discograph/src/infra/bandcamp"
	"discograph/src/infra/httpx"
	"discograph/src/infra/spotify"
	"discograph/src/music"

	"github.com/joho/godotenv"
)

func main() {
	// Credentials may live in a .env file next to the binary.
	_ = godotenv.Load()

	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	cfg := cfgManager.Get()
	if err := cfgManager.EnsureOutputDirs(); err != nil {
		log.Fatalf("failed to prepare output directories: %v", err)
	}

	// One paced client per source so neither source's delay stalls the other.
	spotifySource := spotify.New(
		cfg.Sources.Spotify,
		httpx.New(cfg.Fetch.Timeout(), cfg.Fetch.Pacing()),
		cfg.Fetch.TrackWorkers,
	)
	bandcampSource := bandcamp.New(
		cfg.Sources.Bandcamp,
		httpx.New(cfg.Fetch.Timeout(), cfg.Fetch.Pacing()),
	)

	// Create the matching core
	normalizer := music.NewNormalizer(cfg.Matching.NoiseWords)
	matcher := music.NewMatcher(normalizer, cfg.Matching.DateWindowDays)
	catalogService := catalog.NewService(spotifySource, bandcampSource, music.NewMerger(matcher))

	// Fetch both catalogs and merge them
	releases, err := catalogService.BuildCatalog(context.Background())
	if err != nil {
		log.Fatalf("failed to build catalog: %v", err)
	}

	// Emit pages or the flat report
	publisher := publishing.NewService(cfgManager)
	if err := publisher.Publish(releases); err != nil {
		log.Fatalf("failed to publish catalog: %v", err)
	}

	fmt.Printf("Discography updated: %d releases.\n", len(releases))

	if !cfg.Hosting.Enabled {
		return
	}

	// Serve the emitted pages locally until interrupted.
	server := hosting.NewServer(cfgManager)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("preview server stopped", "error", err)
		}
	}()
	slog.Info("Preview server started. Press Ctrl+C to shut down.", "port", cfg.Hosting.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down preview server...")

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown preview server: %v", err)
	}
	slog.Info("Preview server gracefully shut down.")
}
