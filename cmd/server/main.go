// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

// Package main is the entry point for the StyleHaus server application.
//
// StyleHaus scores clothing compatibility, generates outfit ideas, plans
// multi-day event wardrobes, and learns taste profiles from wear history.
// The engine is fully in-memory: clients send wardrobe data with each
// request and nothing is persisted server-side.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, file, env)
//  2. Match engine: pairwise compatibility scoring with suggestion cache
//  3. Outfit generator: combination sampling, event planning, gap analysis
//  4. Profile analyzer: behavior-based preference extraction
//  5. HTTP server: Chi router under a suture supervisor tree
//
// # Configuration
//
// Environment variables use the STYLEHAUS_ prefix, for example:
//
//	export STYLEHAUS_SERVER_PORT=8820
//	export STYLEHAUS_LOGGING_LEVEL=debug
//	export STYLEHAUS_OUTFITS_MAX_COMBINATIONS=25
//	./stylehaus
//
// A config.yaml in the working directory (or CONFIG_FILE path) layers
// between defaults and environment.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (shutdown timeout)
//   - Stops the supervisor tree
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/stylehaus/internal/api"
	"github.com/tomtom215/stylehaus/internal/config"
	"github.com/tomtom215/stylehaus/internal/logging"
	"github.com/tomtom215/stylehaus/internal/match"
	"github.com/tomtom215/stylehaus/internal/metrics"
	"github.com/tomtom215/stylehaus/internal/outfits"
	"github.com/tomtom215/stylehaus/internal/profile"
	"github.com/tomtom215/stylehaus/internal/supervisor"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting StyleHaus")

	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)

	logger := logging.Logger()

	engine, err := match.NewEngine(matchConfig(cfg), logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create match engine")
	}

	generator, err := outfits.NewGenerator(engine, outfitsConfig(cfg), logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create outfit generator")
	}

	analyzer := profile.NewAnalyzer(logger)

	handler := api.NewHandler(cfg, engine, generator, analyzer)
	router := api.NewRouter(handler, cfg.Security)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Track uptime for the /metrics endpoint
	startTime := time.Now()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				metrics.AppUptime.Set(time.Since(startTime).Seconds())
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel so shutdown errors are not lost
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// matchConfig maps the application config onto the engine's own config.
func matchConfig(cfg *config.Config) match.Config {
	return match.Config{
		Weights: match.ScoreWeights{
			Color:      cfg.Match.ColorWeight,
			Style:      cfg.Match.StyleWeight,
			Category:   cfg.Match.CategoryWeight,
			Occasion:   cfg.Match.OccasionWeight,
			Preference: cfg.Match.PreferenceWeight,
		},
		AvoidedColorPenalty: cfg.Match.AvoidedColorPenalty,
		MatchThreshold:      cfg.Match.MatchThreshold,
		DefaultLimit:        cfg.API.DefaultSuggestions,
		CacheTTL:            cfg.Match.CacheTTL,
		CacheSize:           cfg.Match.CacheSize,
	}
}

// outfitsConfig maps the application config onto the generator's config.
func outfitsConfig(cfg *config.Config) outfits.Config {
	return outfits.Config{
		ScoreThreshold:    cfg.Outfits.ScoreThreshold,
		OccasionThreshold: cfg.Outfits.OccasionThreshold,
		MaxCombinations:   cfg.Outfits.MaxCombinations,
		MaxPerDay:         cfg.Outfits.MaxPerDay,
		Seed:              cfg.Outfits.Seed,
	}
}
