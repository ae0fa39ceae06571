// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package outfits

import (
	"fmt"
)

// Config holds outfit generation configuration.
type Config struct {
	// ScoreThreshold is the minimum outfit score for generated ideas.
	ScoreThreshold float64 `json:"score_threshold"`

	// OccasionThreshold filters items by occasion fit before combining.
	// Items at or below this fit are not considered for the occasion.
	OccasionThreshold float64 `json:"occasion_threshold"`

	// MaxCombinations caps how many combinations one call evaluates.
	MaxCombinations int `json:"max_combinations"`

	// MaxPerDay caps outfits suggested per day in event plans.
	MaxPerDay int `json:"max_per_day"`

	// Seed makes item sampling deterministic.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns a production-ready configuration.
func DefaultConfig() Config {
	return Config{
		ScoreThreshold:    0.55,
		OccasionThreshold: 0.3,
		MaxCombinations:   10,
		MaxPerDay:         2,
		Seed:              42,
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return fmt.Errorf("score threshold must be in [0,1], got %v", c.ScoreThreshold)
	}
	if c.OccasionThreshold < 0 || c.OccasionThreshold > 1 {
		return fmt.Errorf("occasion threshold must be in [0,1], got %v", c.OccasionThreshold)
	}
	if c.MaxCombinations < 1 {
		return fmt.Errorf("max combinations must be at least 1, got %d", c.MaxCombinations)
	}
	if c.MaxPerDay < 1 {
		return fmt.Errorf("max per day must be at least 1, got %d", c.MaxPerDay)
	}
	return nil
}
