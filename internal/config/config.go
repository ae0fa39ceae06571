// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package config

import (
	"time"
)

// Config is the top-level application configuration.
// Values are loaded in layers: built-in defaults, then an optional YAML
// file, then environment variables (highest priority).
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Match    MatchConfig    `koanf:"match"`
	Outfits  OutfitsConfig  `koanf:"outfits"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8820
	Port int `koanf:"port"`

	// Timeout applies to read and write on the HTTP server.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	// DefaultSuggestions is the default number of match suggestions returned.
	DefaultSuggestions int `koanf:"default_suggestions"`

	// MaxSuggestions caps the limit parameter on suggestion endpoints.
	MaxSuggestions int `koanf:"max_suggestions"`

	// MaxWardrobeItems caps the number of items accepted per request body.
	MaxWardrobeItems int `koanf:"max_wardrobe_items"`

	// RequestTimeout bounds handler execution for scoring endpoints.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// BulkRatePerSecond throttles wardrobe-wide scoring operations.
	// Zero disables the throttle.
	BulkRatePerSecond float64 `koanf:"bulk_rate_per_second"`

	// BulkBurst is the burst size for the bulk scoring throttle.
	BulkBurst int `koanf:"bulk_burst"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	// RateLimitReqs is the number of requests allowed per window per IP.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limiting window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled turns off rate limiting entirely (testing only).
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level: trace, debug, info, warn, error. Default: info
	Level string `koanf:"level"`

	// Format: json or console. Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in log output.
	Caller bool `koanf:"caller"`
}

// MatchConfig holds compatibility scoring settings.
// These map onto the match engine's own configuration at startup.
type MatchConfig struct {
	// ColorWeight, StyleWeight, CategoryWeight, OccasionWeight and
	// PreferenceWeight control the composite score blend. They are
	// normalized at engine construction, so only ratios matter.
	ColorWeight      float64 `koanf:"color_weight"`
	StyleWeight      float64 `koanf:"style_weight"`
	CategoryWeight   float64 `koanf:"category_weight"`
	OccasionWeight   float64 `koanf:"occasion_weight"`
	PreferenceWeight float64 `koanf:"preference_weight"`

	// AvoidedColorPenalty is subtracted from the preference score when an
	// item uses a color the user has marked as avoided.
	AvoidedColorPenalty float64 `koanf:"avoided_color_penalty"`

	// MatchThreshold is the minimum composite score for an item pair to
	// count as a suggestion.
	MatchThreshold float64 `koanf:"match_threshold"`

	// CacheTTL bounds how long suggestion results are cached.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheSize is the maximum number of cached suggestion results.
	CacheSize int `koanf:"cache_size"`
}

// OutfitsConfig holds outfit generation settings.
type OutfitsConfig struct {
	// ScoreThreshold is the minimum outfit score for generated ideas.
	ScoreThreshold float64 `koanf:"score_threshold"`

	// OccasionThreshold filters items by occasion fit before combining.
	OccasionThreshold float64 `koanf:"occasion_threshold"`

	// MaxCombinations caps how many combinations a single call evaluates.
	MaxCombinations int `koanf:"max_combinations"`

	// MaxPerDay caps outfits suggested per day in event plans.
	MaxPerDay int `koanf:"max_per_day"`

	// Seed makes item sampling deterministic. Default: 42
	Seed int64 `koanf:"seed"`
}

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8820,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		API: APIConfig{
			DefaultSuggestions: 5,
			MaxSuggestions:     50,
			MaxWardrobeItems:   500,
			RequestTimeout:     10 * time.Second,
			BulkRatePerSecond:  20,
			BulkBurst:          5,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Match: MatchConfig{
			ColorWeight:         0.30,
			StyleWeight:         0.25,
			CategoryWeight:      0.20,
			OccasionWeight:      0.15,
			PreferenceWeight:    0.10,
			AvoidedColorPenalty: 0.3,
			MatchThreshold:      0.4,
			CacheTTL:            5 * time.Minute,
			CacheSize:           1000,
		},
		Outfits: OutfitsConfig{
			ScoreThreshold:    0.55,
			OccasionThreshold: 0.3,
			MaxCombinations:   10,
			MaxPerDay:         2,
			Seed:              42,
		},
	}
}
