// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package config

import (
	"fmt"
)

// Validate checks the configuration for invalid or inconsistent values.
// It is called automatically by Load, and may be called again after
// programmatic modification.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Security.validate(); err != nil {
		return fmt.Errorf("security: %w", err)
	}
	if err := c.Logging.validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Match.validate(); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if err := c.Outfits.validate(); err != nil {
		return fmt.Errorf("outfits: %w", err)
	}
	return nil
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %v", c.ShutdownTimeout)
	}
	switch c.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("environment must be development or production, got %q", c.Environment)
	}
	return nil
}

func (c *APIConfig) validate() error {
	if c.DefaultSuggestions < 1 {
		return fmt.Errorf("default_suggestions must be at least 1, got %d", c.DefaultSuggestions)
	}
	if c.MaxSuggestions < c.DefaultSuggestions {
		return fmt.Errorf("max_suggestions (%d) must be >= default_suggestions (%d)",
			c.MaxSuggestions, c.DefaultSuggestions)
	}
	if c.MaxWardrobeItems < 1 {
		return fmt.Errorf("max_wardrobe_items must be at least 1, got %d", c.MaxWardrobeItems)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", c.RequestTimeout)
	}
	if c.BulkRatePerSecond < 0 {
		return fmt.Errorf("bulk_rate_per_second must not be negative, got %v", c.BulkRatePerSecond)
	}
	if c.BulkRatePerSecond > 0 && c.BulkBurst < 1 {
		return fmt.Errorf("bulk_burst must be at least 1 when throttling is enabled, got %d", c.BulkBurst)
	}
	return nil
}

func (c *SecurityConfig) validate() error {
	if !c.RateLimitDisabled {
		if c.RateLimitReqs < 1 {
			return fmt.Errorf("rate_limit_reqs must be at least 1, got %d", c.RateLimitReqs)
		}
		if c.RateLimitWindow <= 0 {
			return fmt.Errorf("rate_limit_window must be positive, got %v", c.RateLimitWindow)
		}
	}
	return nil
}

func (c *LoggingConfig) validate() error {
	switch c.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}

func (c *MatchConfig) validate() error {
	weights := map[string]float64{
		"color_weight":      c.ColorWeight,
		"style_weight":      c.StyleWeight,
		"category_weight":   c.CategoryWeight,
		"occasion_weight":   c.OccasionWeight,
		"preference_weight": c.PreferenceWeight,
	}
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, w)
		}
	}
	if c.AvoidedColorPenalty < 0 || c.AvoidedColorPenalty > 1 {
		return fmt.Errorf("avoided_color_penalty must be in [0,1], got %v", c.AvoidedColorPenalty)
	}
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("match_threshold must be in [0,1], got %v", c.MatchThreshold)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative, got %v", c.CacheTTL)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

func (c *OutfitsConfig) validate() error {
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return fmt.Errorf("score_threshold must be in [0,1], got %v", c.ScoreThreshold)
	}
	if c.OccasionThreshold < 0 || c.OccasionThreshold > 1 {
		return fmt.Errorf("occasion_threshold must be in [0,1], got %v", c.OccasionThreshold)
	}
	if c.MaxCombinations < 1 {
		return fmt.Errorf("max_combinations must be at least 1, got %d", c.MaxCombinations)
	}
	if c.MaxPerDay < 1 {
		return fmt.Errorf("max_per_day must be at least 1, got %d", c.MaxPerDay)
	}
	return nil
}
