// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"fmt"
	"time"
)

// ScoreWeights controls how component scores blend into the composite.
// Weights are relative; Normalize scales them to sum to 1.
type ScoreWeights struct {
	// Color weights group color harmony over the union of both items' colors.
	Color float64 `json:"color"`

	// Style weights style adjacency between the two items.
	Style float64 `json:"style"`

	// Category weights category complementarity.
	Category float64 `json:"category"`

	// Occasion weights occasion fit, averaged over both items.
	Occasion float64 `json:"occasion"`

	// Preference weights the user preference component.
	Preference float64 `json:"preference"`
}

// DefaultScoreWeights returns the standard blend.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Color:      0.30,
		Style:      0.25,
		Category:   0.20,
		Occasion:   0.15,
		Preference: 0.10,
	}
}

// Normalize scales weights so they sum to 1.0.
// If all weights are zero, the defaults are restored.
func (w *ScoreWeights) Normalize() {
	total := w.Color + w.Style + w.Category + w.Occasion + w.Preference
	if total == 0 {
		*w = DefaultScoreWeights()
		return
	}
	w.Color /= total
	w.Style /= total
	w.Category /= total
	w.Occasion /= total
	w.Preference /= total
}

// ToMap returns the weights as a map for logging and diagnostics.
func (w *ScoreWeights) ToMap() map[string]float64 {
	return map[string]float64{
		"color":      w.Color,
		"style":      w.Style,
		"category":   w.Category,
		"occasion":   w.Occasion,
		"preference": w.Preference,
	}
}

// Config holds match engine configuration.
type Config struct {
	// Weights blends the component scores. Normalized at engine creation.
	Weights ScoreWeights `json:"weights"`

	// AvoidedColorPenalty is subtracted from the preference score when an
	// item uses an avoided color.
	AvoidedColorPenalty float64 `json:"avoided_color_penalty"`

	// MatchThreshold is the minimum composite score for suggestions.
	MatchThreshold float64 `json:"match_threshold"`

	// DefaultLimit is the suggestion count when a request does not set one.
	DefaultLimit int `json:"default_limit"`

	// CacheTTL bounds how long suggestion results are cached.
	// Zero disables caching.
	CacheTTL time.Duration `json:"cache_ttl"`

	// CacheSize is the maximum number of cached suggestion results.
	CacheSize int `json:"cache_size"`
}

// DefaultConfig returns a production-ready configuration.
func DefaultConfig() Config {
	return Config{
		Weights:             DefaultScoreWeights(),
		AvoidedColorPenalty: 0.3,
		MatchThreshold:      0.4,
		DefaultLimit:        5,
		CacheTTL:            5 * time.Minute,
		CacheSize:           1000,
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Weights.Color < 0 || c.Weights.Style < 0 || c.Weights.Category < 0 ||
		c.Weights.Occasion < 0 || c.Weights.Preference < 0 {
		return fmt.Errorf("weights must not be negative: %+v", c.Weights)
	}
	if c.AvoidedColorPenalty < 0 || c.AvoidedColorPenalty > 1 {
		return fmt.Errorf("avoided color penalty must be in [0,1], got %v", c.AvoidedColorPenalty)
	}
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("match threshold must be in [0,1], got %v", c.MatchThreshold)
	}
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be at least 1, got %d", c.DefaultLimit)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got %v", c.CacheTTL)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() Config {
	return *c
}
