// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Engine scores item compatibility and ranks wardrobe matches.
// It is safe for concurrent use.
type Engine struct {
	config Config
	logger zerolog.Logger
	cache  *suggestionCache

	// Operation counters.
	scoreCount      atomic.Int64
	suggestionCount atomic.Int64
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
}

// Stats reports engine operation counters.
type Stats struct {
	Scores      int64 `json:"scores"`
	Suggestions int64 `json:"suggestions"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	CacheSize   int   `json:"cache_size"`
}

// NewEngine creates a match engine. Weights are normalized so only their
// ratios matter.
func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}
	cfg.Weights.Normalize()

	engine := &Engine{
		config: cfg,
		logger: logger.With().Str("component", "match").Logger(),
		cache:  newSuggestionCache(cfg.CacheTTL, cfg.CacheSize),
	}

	engine.logger.Info().
		Interface("weights", cfg.Weights.ToMap()).
		Float64("threshold", cfg.MatchThreshold).
		Msg("Match engine created")

	return engine, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.config.Clone()
}

// Score computes the composite compatibility of an item pair.
// The result is symmetric in A and B and deterministic.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Score(req ScoreRequest) CompatibilityResult {
	e.scoreCount.Add(1)

	result := CompatibilityResult{
		ColorScore:      e.scoreColors(&req.A, &req.B),
		StyleScore:      StyleCompatibility(req.A.Style, req.B.Style),
		CategoryScore:   CategoryScore(req.A.Category, req.B.Category),
		OccasionScore:   e.scoreOccasion(&req.A, &req.B, req.Occasion),
		PreferenceScore: PreferenceScore(&req.A, &req.B, req.Profile, e.config.AvoidedColorPenalty),
	}

	w := e.config.Weights
	result.Score = clamp01(w.Color*result.ColorScore +
		w.Style*result.StyleScore +
		w.Category*result.CategoryScore +
		w.Occasion*result.OccasionScore +
		w.Preference*result.PreferenceScore)

	result.Reasons = buildReasons(&req.A, &req.B, &result)
	return result
}

// scoreColors evaluates group harmony over the union of both items' colors.
func (e *Engine) scoreColors(a, b *ClothingItem) float64 {
	union := make([]string, 0, len(a.Colors)+len(b.Colors))
	union = append(union, a.Colors...)
	union = append(union, b.Colors...)
	return GroupHarmony(union)
}

// scoreOccasion averages both items' occasion fit.
// An empty occasion is neutral at 1.0 so it never drags the composite down.
func (e *Engine) scoreOccasion(a, b *ClothingItem, occasion string) float64 {
	if occasion == "" {
		return 1.0
	}
	return (OccasionScore(a.Style, occasion) + OccasionScore(b.Style, occasion)) / 2
}

// Suggestions ranks wardrobe items against the anchor item, filtered by
// the match threshold and sorted by score descending.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Suggestions(ctx context.Context, req SuggestionRequest) ([]Suggestion, error) {
	e.suggestionCount.Add(1)

	if req.Item.ID == "" {
		return nil, fmt.Errorf("suggestion request requires an anchor item ID")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = e.config.DefaultLimit
	}
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = e.config.MatchThreshold
	}

	cacheKey := suggestionCacheKey(&req)
	if cached, ok := e.cache.get(cacheKey); ok {
		e.cacheHits.Add(1)
		e.logger.Debug().Str("item_id", req.Item.ID).Msg("Suggestion cache hit")
		return cached, nil
	}
	e.cacheMisses.Add(1)

	suggestions := make([]Suggestion, 0, len(req.Wardrobe))
	for i := range req.Wardrobe {
		if err := ContextCancelled(ctx); err != nil {
			return nil, err
		}

		candidate := req.Wardrobe[i]
		if candidate.ID == req.Item.ID {
			continue
		}

		result := e.Score(ScoreRequest{
			A:        req.Item,
			B:        candidate,
			Occasion: req.Occasion,
			Profile:  req.Profile,
		})
		// Strict: a score exactly at the threshold is not a match.
		if result.Score <= threshold {
			continue
		}

		suggestions = append(suggestions, Suggestion{Item: candidate, Result: result})
	}

	// Ranking favors items matching the profile's occasion preferences.
	// The boost never affects the reported score or threshold filtering.
	rank := func(s *Suggestion) float64 {
		return s.Result.Score + PreferenceBoost(&s.Item, req.Profile, req.Occasion)
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return rank(&suggestions[i]) > rank(&suggestions[j])
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	e.cache.put(cacheKey, suggestions)

	e.logger.Debug().
		Str("item_id", req.Item.ID).
		Int("wardrobe", len(req.Wardrobe)).
		Int("matches", len(suggestions)).
		Msg("Suggestions computed")

	return suggestions, nil
}

// Stats returns a snapshot of the operation counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Scores:      e.scoreCount.Load(),
		Suggestions: e.suggestionCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		CacheSize:   e.cache.len(),
	}
}

// ContextCancelled returns the context error if ctx is done, nil otherwise.
// Long scans call this between candidates so cancellation is respected.
func ContextCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
