// Package main is the entry point for raycrawl.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/raycrawl/internal/game"
	"github.com/samdwyer/raycrawl/internal/gamedata"
	"github.com/samdwyer/raycrawl/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run does the real work so deferred cleanup finishes before main exits.
func run() int {
	configPath := flag.String("config", "raycrawl.yaml", "path to an optional YAML config file")
	seed := flag.Int64("seed", 0, "dungeon seed (0 picks one at random)")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// The terminal belongs to tcell, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Failed to open log file: %v", err)
		return 1
	}
	defer logFile.Close()
	logger := zerolog.New(logFile).With().Timestamp().Str("service", "raycrawl").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("telemetry shutdown failed")
			}
		}()
	}

	data, err := loadData(cfg.DataDir)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load game data")
		return 1
	}

	g, err := game.New(ctx, cfg, data, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize game")
		return 1
	}

	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("game error")
		return 1
	}
	return 0
}

// loadData reads game data from dir, or the embedded defaults when dir is empty.
func loadData(dir string) (*gamedata.Bundle, error) {
	if dir == "" {
		return gamedata.LoadBundle(gamedata.Embedded())
	}
	return gamedata.LoadBundle(os.DirFS(dir))
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_RAYCRAWL_API_KEY")
	if apiKey == "" {
		return
	}

	if os.Getenv(telemetry.EndpointEnv) == "" {
		os.Setenv(telemetry.EndpointEnv, "https://api.honeycomb.io")
	}

	// The .env file may have an unexpanded variable reference that doesn't work,
	// so we construct the headers here
	dataset := os.Getenv("HONEYCOMB_RAYCRAWL_DATASET")
	if dataset == "" {
		dataset = "raycrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
